package generation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// Documented defaults substituted for missing or mangled model output. Items
// whose name AND description both remain at the placeholder values are
// dropped, since that means the model produced nothing usable for them.
const (
	defaultItemName        = "Creative Menu Item"
	defaultItemDescription = "A unique culinary creation"
	defaultItemCategory    = "Chef's Selection"

	defaultCocktailName        = "Signature Cocktail"
	defaultCocktailDescription = "A handcrafted house creation"
	defaultCocktailCategory    = "signature"

	defaultPrepTimeMinutes = 30
	defaultEstimatedCost   = 15
	defaultSuggestedPrice  = 32
	defaultProfitMargin    = 53

	defaultCocktailPrepMinutes = 5
	defaultCocktailCost        = 3.5
	defaultCocktailPrice       = 14
	defaultCocktailMargin      = 75
)

var (
	numberPattern     = regexp.MustCompile(`\d+(\.\d+)?`)
	pureNumberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// NormalizeMenuItems coerces repaired model output into fully-shaped menu
// items. It accepts either the parsed top-level object or a bare array, and
// always returns a slice (possibly empty) rather than an error: substituting
// defaults is expected behavior, not failure.
func NormalizeMenuItems(parsed interface{}) []types.GeneratedMenuItem {
	raw := itemArray(parsed, "items", "menu_items")
	out := make([]types.GeneratedMenuItem, 0, len(raw))

	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		item := types.GeneratedMenuItem{
			Name:                  stringOr(m["name"], defaultItemName),
			Description:           stringOr(m["description"], defaultItemDescription),
			Category:              stringOr(m["category"], defaultItemCategory),
			Ingredients:           normalizeIngredients(m["ingredients"]),
			PreparationTime:       intOr(m["preparation_time"], defaultPrepTimeMinutes),
			Difficulty:            normalizeDifficulty(m["difficulty"]),
			EstimatedCost:         numberOr(m["estimated_cost"], defaultEstimatedCost),
			SuggestedPrice:        numberOr(m["suggested_price"], defaultSuggestedPrice),
			ProfitMargin:          numberOr(m["profit_margin"], defaultProfitMargin),
			Recipe:                normalizeRecipe(m["recipe"]),
			Allergens:             stringList(m["allergens"]),
			NutritionalHighlights: stringList(m["nutritional_highlights"]),
			WinePairings:          stringList(m["wine_pairings"]),
			UpsellSuggestions:     stringList(m["upsell_suggestions"]),
		}
		if item.Allergens == nil {
			item.Allergens = []string{}
		}

		// A fully-placeholder entry is a pipeline failure impersonating a
		// result; never surface it.
		if item.Name == defaultItemName && item.Description == defaultItemDescription {
			continue
		}
		out = append(out, item)
	}
	return out
}

// NormalizeCocktails is the cocktail counterpart of NormalizeMenuItems.
func NormalizeCocktails(parsed interface{}) []types.GeneratedCocktail {
	raw := itemArray(parsed, "cocktails", "items")
	out := make([]types.GeneratedCocktail, 0, len(raw))

	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		cocktail := types.GeneratedCocktail{
			Name:              stringOr(m["name"], defaultCocktailName),
			Description:       stringOr(m["description"], defaultCocktailDescription),
			Category:          stringOr(m["category"], defaultCocktailCategory),
			Ingredients:       normalizeCocktailIngredients(m["ingredients"]),
			Instructions:      stringList(m["instructions"]),
			Garnish:           stringOr(m["garnish"], "Fresh garnish"),
			Glassware:         stringOr(m["glassware"], "Rocks glass"),
			EstimatedCost:     numberOr(m["estimated_cost"], defaultCocktailCost),
			SuggestedPrice:    numberOr(m["suggested_price"], defaultCocktailPrice),
			ProfitMargin:      numberOr(m["profit_margin"], defaultCocktailMargin),
			PreparationTime:   intOr(m["preparation_time"], defaultCocktailPrepMinutes),
			BatchInstructions: stringList(m["batch_instructions"]),
			BatchYield:        cleanString(m["batch_yield"]),
			Variations:        normalizeVariations(m["variations"]),
			FoodPairings:      stringList(m["food_pairings"]),
		}
		if len(cocktail.Instructions) == 0 {
			cocktail.Instructions = []string{"Combine ingredients over ice, stir and strain."}
		}

		if cocktail.Name == defaultCocktailName && cocktail.Description == defaultCocktailDescription {
			continue
		}
		out = append(out, cocktail)
	}
	return out
}

// itemArray digs the candidate array out of the parsed payload, trying the
// given object keys first and falling back to a bare top-level array.
func itemArray(parsed interface{}, keys ...string) []interface{} {
	switch v := parsed.(type) {
	case map[string]interface{}:
		for _, key := range keys {
			if arr, ok := v[key].([]interface{}); ok {
				return arr
			}
		}
		// Single object without a wrapper array.
		for _, key := range keys {
			if obj, ok := v[key].(map[string]interface{}); ok {
				return []interface{}{obj}
			}
		}
		if _, hasName := v["name"]; hasName {
			return []interface{}{v}
		}
	case []interface{}:
		return v
	}
	return nil
}

// cleanString applies the string field rule: trim, then reject values that
// are empty, purely numeric, or price tokens that landed in a text field.
func cleanString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "$") || pureNumberPattern.MatchString(s) {
		return ""
	}
	return s
}

func stringOr(v interface{}, def string) string {
	if s := cleanString(v); s != "" {
		return s
	}
	return def
}

// numberOr accepts numbers as-is; for strings it extracts the first numeric
// substring ("$12.50" -> 12.5, "about 20 minutes" -> 20).
func numberOr(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if match := numberPattern.FindString(n); match != "" {
			if f, err := strconv.ParseFloat(match, 64); err == nil {
				return f
			}
		}
	}
	return def
}

func intOr(v interface{}, def int) int {
	return int(numberOr(v, float64(def)))
}

// stringList applies the string rule to every entry and drops rejects.
func stringList(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, entry := range arr {
		if s := cleanString(entry); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeDifficulty(v interface{}) string {
	switch strings.ToLower(cleanString(v)) {
	case "easy":
		return "easy"
	case "hard":
		return "hard"
	default:
		return "medium"
	}
}

// normalizeIngredients accepts both structured ingredient objects and plain
// strings. A missing or empty list synthesizes one default ingredient so
// downstream consumers can assume non-empty lists.
func normalizeIngredients(v interface{}) []types.Ingredient {
	arr, _ := v.([]interface{})
	out := make([]types.Ingredient, 0, len(arr))

	for _, entry := range arr {
		switch ing := entry.(type) {
		case map[string]interface{}:
			name := cleanString(ing["ingredient"])
			if name == "" {
				name = cleanString(ing["name"])
			}
			if name == "" {
				continue
			}
			out = append(out, types.Ingredient{
				Ingredient: name,
				Amount:     stringOr(ing["amount"], "1"),
				Unit:       stringOr(ing["unit"], "portion"),
				Cost:       numberOr(ing["cost"], 1),
				Notes:      cleanString(ing["notes"]),
			})
		case string:
			if name := cleanString(entry); name != "" {
				out = append(out, types.Ingredient{Ingredient: name, Amount: "1", Unit: "portion", Cost: 1})
			}
		}
	}

	if len(out) == 0 {
		out = append(out, types.Ingredient{Ingredient: "Seasonal ingredients", Amount: "1", Unit: "portion", Cost: 3})
	}
	return out
}

func normalizeCocktailIngredients(v interface{}) []types.CocktailIngredient {
	arr, _ := v.([]interface{})
	out := make([]types.CocktailIngredient, 0, len(arr))

	for _, entry := range arr {
		switch ing := entry.(type) {
		case map[string]interface{}:
			name := cleanString(ing["ingredient"])
			if name == "" {
				name = cleanString(ing["name"])
			}
			if name == "" {
				continue
			}
			out = append(out, types.CocktailIngredient{
				Ingredient:  name,
				Amount:      stringOr(ing["amount"], "1"),
				Unit:        cleanString(ing["unit"]),
				Cost:        numberOr(ing["cost"], 0.5),
				BatchAmount: cleanString(ing["batch_amount"]),
			})
		case string:
			if name := cleanString(entry); name != "" {
				out = append(out, types.CocktailIngredient{Ingredient: name, Amount: "1", Cost: 0.5})
			}
		}
	}

	if len(out) == 0 {
		out = append(out, types.CocktailIngredient{Ingredient: "House spirit", Amount: "2", Unit: "oz", Cost: 1.5})
	}
	return out
}

// normalizeRecipe recursively normalizes the nested recipe object. An absent
// recipe synthesizes a minimal one-step structure rather than empty lists.
func normalizeRecipe(v interface{}) types.Recipe {
	m, _ := v.(map[string]interface{})

	recipe := types.Recipe{
		Serves:              intOr(m["serves"], 1),
		PrepInstructions:    stringList(m["prep_instructions"]),
		CookingInstructions: stringList(m["cooking_instructions"]),
		PlatingInstructions: stringList(m["plating_instructions"]),
		Techniques:          stringList(m["techniques"]),
		BatchInstructions:   stringList(m["batch_instructions"]),
		BatchServes:         intOr(m["batch_serves"], 0),
	}
	if len(recipe.PrepInstructions) == 0 {
		recipe.PrepInstructions = []string{"Prepare and portion all ingredients."}
	}
	if len(recipe.CookingInstructions) == 0 {
		recipe.CookingInstructions = []string{"Cook according to standard technique for this dish."}
	}
	if len(recipe.PlatingInstructions) == 0 {
		recipe.PlatingInstructions = []string{"Plate cleanly and serve immediately."}
	}
	if len(recipe.Techniques) == 0 {
		recipe.Techniques = []string{"Standard preparation"}
	}
	return recipe
}

func normalizeVariations(v interface{}) []types.CocktailVariation {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]types.CocktailVariation, 0, len(arr))
	for _, entry := range arr {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		name := cleanString(m["name"])
		if name == "" {
			continue
		}
		out = append(out, types.CocktailVariation{
			Name:    name,
			Changes: stringList(m["changes"]),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
