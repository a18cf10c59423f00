package generation

import (
	"fmt"
	"strings"
	"time"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// FallbackMenuItems returns deterministic templated menu items built from the
// restaurant's own profile. It never fails and never touches the network; it
// exists so callers always receive a non-empty, well-shaped list when the
// model and the repair logic both come up empty.
func FallbackMenuItems(rc *types.RestaurantContext) []types.GeneratedMenuItem {
	place := locationOr(rc, "the region")
	suffix := time.Now().Format("0102")

	templates := []struct {
		name        string
		description string
		category    string
		cost        float64
		price       float64
		prep        int
	}{
		{
			name:        fmt.Sprintf("%s House Special %s", rc.Name, suffix),
			description: fmt.Sprintf("Our signature %s dish, built around the best ingredients %s has to offer.", strings.ToLower(rc.Theme), place),
			category:    firstCategory(rc, "Entrees"),
			cost:        9.5, price: 28, prep: 35,
		},
		{
			name:        fmt.Sprintf("Chef's %s Starter", titleCase(rc.Theme)),
			description: fmt.Sprintf("A shareable opener that sets the tone for the %s experience at %s.", strings.ToLower(rc.Theme), rc.Name),
			category:    firstCategory(rc, "Appetizers"),
			cost:        4.5, price: 14, prep: 15,
		},
		{
			name:        fmt.Sprintf("Seasonal %s Plate", titleCase(rc.Theme)),
			description: fmt.Sprintf("Rotating seasonal preparation showcasing what's fresh %s this week.", place),
			category:    firstCategory(rc, "Entrees"),
			cost:        8, price: 24, prep: 30,
		},
		{
			name:        fmt.Sprintf("%s Finale", rc.Name),
			description: fmt.Sprintf("A house dessert that keeps guests of %s talking on the way out.", rc.Name),
			category:    "Desserts",
			cost:        3, price: 11, prep: 20,
		},
	}

	items := make([]types.GeneratedMenuItem, 0, len(templates))
	for _, t := range templates {
		margin := (t.price - t.cost) / t.price * 100
		items = append(items, types.GeneratedMenuItem{
			Name:            t.name,
			Description:     t.description,
			Category:        t.category,
			Ingredients:     []types.Ingredient{{Ingredient: "Seasonal ingredients", Amount: "1", Unit: "portion", Cost: t.cost}},
			PreparationTime: t.prep,
			Difficulty:      "medium",
			EstimatedCost:   t.cost,
			SuggestedPrice:  t.price,
			ProfitMargin:    margin,
			Recipe: types.Recipe{
				Serves:              1,
				PrepInstructions:    []string{"Prepare and portion all ingredients during morning prep."},
				CookingInstructions: []string{fmt.Sprintf("Cook using the kitchen's standard %s technique.", strings.ToLower(rc.Theme))},
				PlatingInstructions: []string{"Plate cleanly and serve immediately."},
				Techniques:          []string{"Standard preparation"},
			},
			Allergens: []string{},
		})
	}
	return items
}

// FallbackCocktails is the cocktail counterpart of FallbackMenuItems.
func FallbackCocktails(rc *types.RestaurantContext) []types.GeneratedCocktail {
	suffix := time.Now().Format("0102")

	templates := []struct {
		name        string
		description string
		spirit      string
		glass       string
		cost        float64
		price       float64
	}{
		{
			name:        fmt.Sprintf("%s Signature %s", rc.Name, suffix),
			description: fmt.Sprintf("The house pour at %s, balanced to match the %s menu.", rc.Name, strings.ToLower(rc.Theme)),
			spirit:      "Vodka", glass: "Coupe",
			cost: 2.8, price: 13,
		},
		{
			name:        fmt.Sprintf("%s Old Fashioned", titleCase(rc.Theme)),
			description: fmt.Sprintf("A familiar classic with a %s twist.", strings.ToLower(rc.Theme)),
			spirit:      "Bourbon", glass: "Rocks glass",
			cost: 3.2, price: 14,
		},
		{
			name:        fmt.Sprintf("Garden Spritz %s", locationOr(rc, "House")),
			description: "Bright, low-proof and endlessly sessionable.",
			spirit:      "Aperitivo", glass: "Wine glass",
			cost: 2.2, price: 12,
		},
	}

	cocktails := make([]types.GeneratedCocktail, 0, len(templates))
	for _, t := range templates {
		margin := (t.price - t.cost) / t.price * 100
		cocktails = append(cocktails, types.GeneratedCocktail{
			Name:        t.name,
			Description: t.description,
			Category:    "signature",
			Ingredients: []types.CocktailIngredient{
				{Ingredient: t.spirit, Amount: "2", Unit: "oz", Cost: t.cost - 0.5},
				{Ingredient: "House mix", Amount: "1", Unit: "oz", Cost: 0.5},
			},
			Instructions:    []string{"Combine ingredients over ice.", "Stir until well chilled.", "Strain and garnish."},
			Garnish:         "Citrus twist",
			Glassware:       t.glass,
			EstimatedCost:   t.cost,
			SuggestedPrice:  t.price,
			ProfitMargin:    margin,
			PreparationTime: 3,
		})
	}
	return cocktails
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func firstCategory(rc *types.RestaurantContext, def string) string {
	if len(rc.Categories) > 0 {
		return rc.Categories[0]
	}
	return def
}

func locationOr(rc *types.RestaurantContext, def string) string {
	if rc.Location != "" {
		return rc.Location
	}
	return def
}
