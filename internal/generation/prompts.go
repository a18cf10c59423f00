package generation

import (
	"fmt"
	"strings"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

const defaultMenuItemCount = 4
const defaultCocktailCount = 4

// menuSystemPrompt instructs the model to return menu items as strict JSON.
// The example shape mirrors types.GeneratedMenuItem so the normalizer has a
// fighting chance even when the model drifts.
const menuSystemPrompt = `You are an experienced executive chef and restaurant consultant. You design menu items that fit the restaurant's concept, kitchen capability and financial goals.

Respond with JSON only. No markdown, no explanations, no text outside the JSON object. Use this exact structure:
{
    "items": [
        {
            "name": "Dish name",
            "description": "One or two enticing sentences",
            "category": "Menu category",
            "ingredients": [
                {"ingredient": "Chicken breast", "amount": "6", "unit": "oz", "cost": 2.50, "notes": "optional"}
            ],
            "preparation_time": 25,
            "difficulty": "easy/medium/hard",
            "estimated_cost": 6.50,
            "suggested_price": 24.00,
            "profit_margin": 72.9,
            "recipe": {
                "serves": 1,
                "prep_instructions": ["step"],
                "cooking_instructions": ["step"],
                "plating_instructions": ["step"],
                "techniques": ["technique"]
            },
            "allergens": ["dairy"],
            "nutritional_highlights": ["high protein"],
            "wine_pairings": ["Pinot Noir"],
            "upsell_suggestions": ["add a side salad"]
        }
    ]
}

The preparation_time field must be minutes as a number. The cost, price and margin fields must be numbers, not strings.`

// cocktailSystemPrompt is the cocktail counterpart of menuSystemPrompt.
const cocktailSystemPrompt = `You are an award-winning bar director and beverage consultant. You design cocktail programs that fit the venue's concept and margins.

Respond with JSON only. No markdown, no explanations, no text outside the JSON object. Use this exact structure:
{
    "cocktails": [
        {
            "name": "Cocktail name",
            "description": "One or two enticing sentences",
            "category": "signature/classic/seasonal",
            "ingredients": [
                {"ingredient": "Bourbon", "amount": "2", "unit": "oz", "cost": 1.80}
            ],
            "instructions": ["step"],
            "garnish": "Orange twist",
            "glassware": "Rocks glass",
            "estimated_cost": 3.20,
            "suggested_price": 14.00,
            "profit_margin": 77.1,
            "preparation_time": 3
        }
    ]
}

The preparation_time field must be minutes as a number. The cost, price and margin fields must be numbers, not strings.`

// BuildMenuPrompt assembles the system and user prompts for a menu item
// generation request. Optional constraints are appended as extra lines only
// when present.
func BuildMenuPrompt(req *types.MenuGenerationRequest) (string, string) {
	count := req.ItemCount
	if count <= 0 {
		count = defaultMenuItemCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d new menu items for the following restaurant.\n\n", count)
	b.WriteString(BuildContextText(req.Context, req.CurrentMenu))
	b.WriteString("\n")

	if req.SpecificRequests != "" {
		fmt.Fprintf(&b, "Specific requests: %s\n", req.SpecificRequests)
	}
	if len(req.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "Every item must accommodate these dietary restrictions: %s\n", strings.Join(req.DietaryRestrictions, ", "))
	}
	if req.PriceTarget != "" {
		fmt.Fprintf(&b, "Target price tier: %s\n", req.PriceTarget)
	}
	if req.SeasonalFocus != "" {
		fmt.Fprintf(&b, "Seasonal focus: %s\n", req.SeasonalFocus)
	}
	if req.CategoryFocus != "" {
		fmt.Fprintf(&b, "Focus on the %s category.\n", req.CategoryFocus)
	}
	if req.BatchProduction {
		size := req.BatchSize
		if size <= 0 {
			size = 20
		}
		fmt.Fprintf(&b, "Items must be suitable for batch production of %d servings; include batch_instructions and batch_serves in the recipe.\n", size)
	}

	fmt.Fprintf(&b, "\nReturn exactly %d items in the JSON structure described.", count)
	return menuSystemPrompt, b.String()
}

// BuildCocktailPrompt assembles the system and user prompts for a cocktail
// generation request.
func BuildCocktailPrompt(req *types.CocktailGenerationRequest) (string, string) {
	count := req.CocktailCount
	if count <= 0 {
		count = defaultCocktailCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d new cocktails for the following venue.\n\n", count)
	b.WriteString(BuildContextText(req.Context, nil))
	b.WriteString("\n")

	if req.ThemeOverride != "" {
		fmt.Fprintf(&b, "Cocktail program theme: %s\n", req.ThemeOverride)
	}
	if len(req.BaseSpirits) > 0 {
		fmt.Fprintf(&b, "Preferred base spirits: %s\n", strings.Join(req.BaseSpirits, ", "))
	}
	if req.Complexity != "" {
		fmt.Fprintf(&b, "Complexity level: %s\n", req.Complexity)
	}
	if req.Seasonality != "" {
		fmt.Fprintf(&b, "Seasonality: %s\n", req.Seasonality)
	}
	if req.Batchable {
		b.WriteString("Cocktails must be batchable for service volume; include batch_instructions and batch_yield.\n")
	}
	if len(req.ExistingCocktails) > 0 {
		fmt.Fprintf(&b, "Do not duplicate these existing cocktails: %s\n", strings.Join(req.ExistingCocktails, ", "))
	}

	fmt.Fprintf(&b, "\nReturn exactly %d cocktails in the JSON structure described.", count)
	return cocktailSystemPrompt, b.String()
}
