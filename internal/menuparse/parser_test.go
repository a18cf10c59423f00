package menuparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMenu = `APPETIZERS
Bruschetta - toasted bread with tomatoes $12
ENTREES
Grilled Salmon with seasonal vegetables ... 24
`

func TestParse(t *testing.T) {
	t.Run("typical two section menu", func(t *testing.T) {
		parsed := Parse(sampleMenu)

		assert.Equal(t, []string{"Appetizers", "Entrees"}, parsed.Categories)
		require.Len(t, parsed.Items, 2)

		assert.Equal(t, "Bruschetta", parsed.Items[0].Name)
		assert.Equal(t, "Appetizers", parsed.Items[0].Category)
		require.NotNil(t, parsed.Items[0].Price)
		assert.Equal(t, 12.0, *parsed.Items[0].Price)

		assert.Equal(t, "Grilled Salmon", parsed.Items[1].Name)
		assert.Equal(t, "Entrees", parsed.Items[1].Category)
		require.NotNil(t, parsed.Items[1].Price)
		assert.Equal(t, 24.0, *parsed.Items[1].Price)
	})

	t.Run("same input yields same output", func(t *testing.T) {
		first := Parse(sampleMenu)
		second := Parse(sampleMenu)
		assert.Equal(t, first, second)
	})

	t.Run("keyword headers in mixed case", func(t *testing.T) {
		parsed := Parse("Soups and Salads\nFrench Onion 9.50\n")
		assert.Equal(t, []string{"Soups And Salads"}, parsed.Categories)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "French Onion", parsed.Items[0].Name)
		assert.Equal(t, 9.5, *parsed.Items[0].Price)
	})

	t.Run("divider promotes long line to header", func(t *testing.T) {
		parsed := Parse("Selections From Our Wood Fired Oven Tonight\n--------\nMargherita Flatbread 16\n")
		assert.Equal(t, []string{"Selections From Our Wood Fired Oven Tonight"}, parsed.Categories)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "Margherita Flatbread", parsed.Items[0].Name)
	})

	t.Run("price line is never a header", func(t *testing.T) {
		parsed := Parse("ENTREES\nSTEAK FRITES $29\n")
		assert.Equal(t, []string{"Entrees"}, parsed.Categories)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "STEAK FRITES", parsed.Items[0].Name)
	})

	t.Run("items before any header are skipped", func(t *testing.T) {
		parsed := Parse("Open daily 5pm-10pm $5 corkage\nENTREES\nRoast Chicken 21\n")
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "Roast Chicken", parsed.Items[0].Name)
	})

	t.Run("duplicate headers collapse", func(t *testing.T) {
		parsed := Parse("DESSERTS\nTiramisu 9\ndesserts\nAffogato 8\n")
		assert.Equal(t, []string{"Desserts"}, parsed.Categories)
		assert.Len(t, parsed.Items, 2)
	})

	t.Run("item without price", func(t *testing.T) {
		parsed := Parse("SIDES\nMarinated Olives, warm\n")
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "Marinated Olives, warm", parsed.Items[0].Name)
		assert.Nil(t, parsed.Items[0].Price)
	})

	t.Run("dot leaders stripped from name", func(t *testing.T) {
		parsed := Parse("MAINS\nLobster Roll.......... 28\n")
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "Lobster Roll", parsed.Items[0].Name)
		assert.Equal(t, 28.0, *parsed.Items[0].Price)
	})

	t.Run("keyword fallback when nothing classifies as a header", func(t *testing.T) {
		parsed := Parse("Call 555-1234 to order pizza & wine 7 days")
		assert.Equal(t, []string{"Pizza", "Wine"}, parsed.Categories)
		assert.Empty(t, parsed.Items)
	})

	t.Run("empty input", func(t *testing.T) {
		parsed := Parse("")
		assert.Empty(t, parsed.Categories)
		assert.Empty(t, parsed.Items)
		assert.NotNil(t, parsed.Categories)
		assert.NotNil(t, parsed.Items)
	})
}

func TestIsCategoryHeader(t *testing.T) {
	assert.True(t, isCategoryHeader("APPETIZERS", false))
	assert.True(t, isCategoryHeader("Desserts", false))
	assert.True(t, isCategoryHeader("From the Raw Bar", false))
	assert.False(t, isCategoryHeader("Caesar Salad $14", false))
	assert.False(t, isCategoryHeader("House Red 9", false))
	assert.False(t, isCategoryHeader("Open daily, walk-ins welcome until close of service tonight", false))
}

func TestExtractItem(t *testing.T) {
	t.Run("name dash description", func(t *testing.T) {
		item, ok := extractItem("Bruschetta - toasted bread with tomatoes $12", "Appetizers")
		require.True(t, ok)
		assert.Equal(t, "Bruschetta", item.Name)
		assert.Equal(t, 12.0, *item.Price)
	})

	t.Run("lead-in at word start never truncates to nothing", func(t *testing.T) {
		item, ok := extractItem("Grilled Salmon with vegetables 24", "Entrees")
		require.True(t, ok)
		assert.Equal(t, "Grilled Salmon", item.Name)
	})

	t.Run("too-short names are rejected", func(t *testing.T) {
		_, ok := extractItem("ab 9", "Entrees")
		assert.False(t, ok)
	})

	t.Run("pure number lines are rejected", func(t *testing.T) {
		_, ok := extractItem("2999", "Entrees")
		assert.False(t, ok)
	})
}

func TestTruncateAtLeadIn(t *testing.T) {
	assert.Equal(t, "Grilled Salmon", truncateAtLeadIn("Grilled Salmon with vegetables"))
	assert.Equal(t, "Short Rib", truncateAtLeadIn("Short Rib served over polenta"))
	assert.Equal(t, "Grilled Salmon", truncateAtLeadIn("Grilled Salmon"))
	assert.Equal(t, "Fried Chicken", truncateAtLeadIn("Fried Chicken topped with gravy"))
}
