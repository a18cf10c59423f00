package generation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalizeMenuItems(t *testing.T) {
	t.Run("complete item passes through", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{
			"name": "Seared Scallops",
			"description": "Pan-seared with brown butter",
			"category": "Entrees",
			"ingredients": [{"ingredient": "Scallops", "amount": "5", "unit": "pieces", "cost": 7.5}],
			"preparation_time": 20,
			"difficulty": "hard",
			"estimated_cost": 9.0,
			"suggested_price": 34.0,
			"profit_margin": 73.5,
			"allergens": ["shellfish"]
		}]}`)

		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		item := items[0]
		assert.Equal(t, "Seared Scallops", item.Name)
		assert.Equal(t, "Entrees", item.Category)
		assert.Equal(t, 20, item.PreparationTime)
		assert.Equal(t, "hard", item.Difficulty)
		assert.Equal(t, 9.0, item.EstimatedCost)
		assert.Equal(t, 34.0, item.SuggestedPrice)
		assert.Equal(t, 73.5, item.ProfitMargin)
		assert.Equal(t, []string{"shellfish"}, item.Allergens)
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{"name": "Mystery Dish"}]}`)

		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		item := items[0]
		assert.Equal(t, "A unique culinary creation", item.Description)
		assert.Equal(t, "Chef's Selection", item.Category)
		assert.Equal(t, 30, item.PreparationTime)
		assert.Equal(t, "medium", item.Difficulty)
		assert.Equal(t, 15.0, item.EstimatedCost)
		assert.Equal(t, 32.0, item.SuggestedPrice)
		assert.Equal(t, 53.0, item.ProfitMargin)
		require.Len(t, item.Ingredients, 1)
		assert.Equal(t, "Seasonal ingredients", item.Ingredients[0].Ingredient)
		assert.NotEmpty(t, item.Recipe.PrepInstructions)
		assert.NotEmpty(t, item.Recipe.CookingInstructions)
		assert.NotNil(t, item.Allergens)
		assert.Empty(t, item.Allergens)
	})

	t.Run("fully placeholder item is dropped", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{"price": "$20"}]}`)
		items := NormalizeMenuItems(parsed)
		assert.Empty(t, items)
	})

	t.Run("numeric strings are extracted", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{
			"name": "Burger",
			"description": "Classic",
			"estimated_cost": "$4.50",
			"suggested_price": "about 16 dollars",
			"preparation_time": "25 minutes"
		}]}`)

		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		assert.Equal(t, 4.5, items[0].EstimatedCost)
		assert.Equal(t, 16.0, items[0].SuggestedPrice)
		assert.Equal(t, 25, items[0].PreparationTime)
	})

	t.Run("price tokens in text fields are rejected", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{
			"name": "$24.00",
			"description": "A real description",
			"category": "42"
		}]}`)

		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		assert.Equal(t, "Creative Menu Item", items[0].Name)
		assert.Equal(t, "Chef's Selection", items[0].Category)
	})

	t.Run("alternate wrapper key", func(t *testing.T) {
		parsed := parseJSON(t, `{"menu_items": [{"name": "Tacos", "description": "Street style"}]}`)
		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		assert.Equal(t, "Tacos", items[0].Name)
	})

	t.Run("bare array", func(t *testing.T) {
		parsed := parseJSON(t, `[{"name": "Tacos", "description": "Street style"}]`)
		items := NormalizeMenuItems(parsed)
		assert.Len(t, items, 1)
	})

	t.Run("single object with name", func(t *testing.T) {
		parsed := parseJSON(t, `{"name": "Tacos", "description": "Street style"}`)
		items := NormalizeMenuItems(parsed)
		assert.Len(t, items, 1)
	})

	t.Run("string ingredients are lifted", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{
			"name": "Salad",
			"description": "Fresh",
			"ingredients": ["Lettuce", "Tomato", ""]
		}]}`)

		items := NormalizeMenuItems(parsed)
		require.Len(t, items, 1)
		require.Len(t, items[0].Ingredients, 2)
		assert.Equal(t, "Lettuce", items[0].Ingredients[0].Ingredient)
		assert.Equal(t, "portion", items[0].Ingredients[0].Unit)
	})

	t.Run("non-object entries are skipped", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": ["just a string", 42, {"name": "Real", "description": "Dish"}]}`)
		items := NormalizeMenuItems(parsed)
		assert.Len(t, items, 1)
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, NormalizeMenuItems(nil))
	})
}

func TestNormalizeCocktails(t *testing.T) {
	t.Run("complete cocktail passes through", func(t *testing.T) {
		parsed := parseJSON(t, `{"cocktails": [{
			"name": "Smoked Maple Old Fashioned",
			"description": "Rich and smoky",
			"category": "signature",
			"ingredients": [{"ingredient": "Bourbon", "amount": "2", "unit": "oz", "cost": 1.8}],
			"instructions": ["Stir with ice", "Strain over a large cube"],
			"garnish": "Orange twist",
			"glassware": "Rocks glass",
			"estimated_cost": 3.2,
			"suggested_price": 15.0,
			"profit_margin": 78.7,
			"preparation_time": 4
		}]}`)

		cocktails := NormalizeCocktails(parsed)
		require.Len(t, cocktails, 1)
		c := cocktails[0]
		assert.Equal(t, "Smoked Maple Old Fashioned", c.Name)
		assert.Equal(t, "Orange twist", c.Garnish)
		assert.Equal(t, 3.2, c.EstimatedCost)
		assert.Equal(t, 4, c.PreparationTime)
		assert.Len(t, c.Instructions, 2)
	})

	t.Run("missing fields get cocktail defaults", func(t *testing.T) {
		parsed := parseJSON(t, `{"cocktails": [{"name": "House Fizz"}]}`)

		cocktails := NormalizeCocktails(parsed)
		require.Len(t, cocktails, 1)
		c := cocktails[0]
		assert.Equal(t, "A handcrafted house creation", c.Description)
		assert.Equal(t, "signature", c.Category)
		assert.Equal(t, 3.5, c.EstimatedCost)
		assert.Equal(t, 14.0, c.SuggestedPrice)
		assert.Equal(t, 75.0, c.ProfitMargin)
		assert.Equal(t, 5, c.PreparationTime)
		assert.NotEmpty(t, c.Instructions)
		require.Len(t, c.Ingredients, 1)
		assert.Equal(t, "House spirit", c.Ingredients[0].Ingredient)
	})

	t.Run("fully placeholder cocktail is dropped", func(t *testing.T) {
		parsed := parseJSON(t, `{"cocktails": [{"glassware": "Coupe"}]}`)
		assert.Empty(t, NormalizeCocktails(parsed))
	})

	t.Run("variations require a name", func(t *testing.T) {
		parsed := parseJSON(t, `{"cocktails": [{
			"name": "Spritz",
			"description": "Light",
			"variations": [
				{"name": "Zero Proof", "changes": ["swap aperitivo for bitter soda"]},
				{"changes": ["no name, dropped"]}
			]
		}]}`)

		cocktails := NormalizeCocktails(parsed)
		require.Len(t, cocktails, 1)
		require.Len(t, cocktails[0].Variations, 1)
		assert.Equal(t, "Zero Proof", cocktails[0].Variations[0].Name)
	})

	t.Run("items key accepted as wrapper", func(t *testing.T) {
		parsed := parseJSON(t, `{"items": [{"name": "Negroni", "description": "Bitter classic"}]}`)
		assert.Len(t, NormalizeCocktails(parsed), 1)
	})
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Pasta", cleanString("  Pasta  "))
	assert.Equal(t, "", cleanString("$12.50"))
	assert.Equal(t, "", cleanString("42"))
	assert.Equal(t, "", cleanString("3.14"))
	assert.Equal(t, "", cleanString(""))
	assert.Equal(t, "", cleanString(nil))
	assert.Equal(t, "", cleanString(12.5))
	assert.Equal(t, "Table 42", cleanString("Table 42"))
}

func TestNumberOr(t *testing.T) {
	assert.Equal(t, 12.5, numberOr(12.5, 1))
	assert.Equal(t, 12.5, numberOr("$12.50", 1))
	assert.Equal(t, 20.0, numberOr("about 20 minutes", 1))
	assert.Equal(t, 1.0, numberOr("no digits here", 1))
	assert.Equal(t, 1.0, numberOr(nil, 1))
	assert.Equal(t, 1.0, numberOr(true, 1))
}

func TestNormalizeDifficulty(t *testing.T) {
	assert.Equal(t, "easy", normalizeDifficulty("easy"))
	assert.Equal(t, "easy", normalizeDifficulty("Easy"))
	assert.Equal(t, "hard", normalizeDifficulty("HARD"))
	assert.Equal(t, "medium", normalizeDifficulty("medium"))
	assert.Equal(t, "medium", normalizeDifficulty("expert"))
	assert.Equal(t, "medium", normalizeDifficulty(nil))
}
