package generation

import (
	"fmt"
	"strings"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// BuildContextText flattens a restaurant profile into the text block embedded
// in generation prompts. Output order is fixed (identity, business context,
// location and market, kitchen and operations, financial goals, competitive
// positioning, challenges and priorities, current menu); empty optional
// fields are skipped entirely.
func BuildContextText(rc *types.RestaurantContext, currentMenu []types.MenuSnapshotItem) string {
	var b strings.Builder

	// Identity
	fmt.Fprintf(&b, "Restaurant: %s\n", rc.Name)
	fmt.Fprintf(&b, "Theme/Cuisine: %s\n", rc.Theme)
	if len(rc.Categories) > 0 {
		fmt.Fprintf(&b, "Menu categories: %s\n", strings.Join(rc.Categories, ", "))
	}
	fmt.Fprintf(&b, "Kitchen capability: %s\n", rc.KitchenCapability)
	fmt.Fprintf(&b, "Staff size: %d\n", rc.StaffSize)

	// Business context
	writeLine(&b, "Business type", rc.BusinessType)
	writeLine(&b, "Years in business", rc.YearsInBusiness)
	writeLine(&b, "Service style", rc.ServiceStyle)
	writeLine(&b, "Seating capacity", rc.SeatingCapacity)
	writeLine(&b, "Peak hours", rc.PeakHours)

	// Location and market
	writeLine(&b, "Location", rc.Location)
	writeLine(&b, "Target demographic", rc.TargetDemographic)
	writeLine(&b, "Market position", rc.MarketPosition)
	writeLine(&b, "Local ingredients", rc.LocalIngredients)
	writeLine(&b, "Seasonal notes", rc.SeasonalNotes)

	// Kitchen and operations
	writeListLine(&b, "Available equipment", rc.Equipment)
	writeListLine(&b, "Signature dishes", rc.SignatureDishes)
	writeLine(&b, "Supplier notes", rc.SupplierNotes)
	writeLine(&b, "Dietary focus", rc.DietaryFocus)
	writeLine(&b, "Prep capacity", rc.PrepCapacity)

	// Financial goals
	writeLine(&b, "Average ticket price", rc.AverageTicketPrice)
	writeLine(&b, "Food cost goal", rc.FoodCostGoal)
	writeLine(&b, "Labor budget", rc.LaborBudget)
	writeLine(&b, "Revenue goals", rc.RevenueGoals)

	// Competitive positioning
	writeLine(&b, "Competitors", rc.Competitors)
	writeLine(&b, "Differentiators", rc.Differentiators)
	writeLine(&b, "Brand voice", rc.BrandVoice)

	// Challenges and priorities
	writeListLine(&b, "Current challenges", rc.Challenges)
	writeListLine(&b, "Priorities", rc.Priorities)
	writeLine(&b, "Customer feedback", rc.CustomerFeedback)
	writeLine(&b, "Expansion plans", rc.ExpansionPlans)

	if len(currentMenu) > 0 {
		b.WriteString("Current menu:\n")
		for _, category := range menuCategories(currentMenu) {
			fmt.Fprintf(&b, "  %s:\n", category)
			for _, item := range currentMenu {
				itemCategory := item.Category
				if itemCategory == "" {
					itemCategory = "Uncategorized"
				}
				if itemCategory != category {
					continue
				}
				if item.Price != nil {
					fmt.Fprintf(&b, "    - %s ($%.2f)\n", item.Name, *item.Price)
				} else {
					fmt.Fprintf(&b, "    - %s\n", item.Name)
				}
			}
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func writeListLine(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, ", "))
}

// menuCategories returns the distinct categories of the snapshot in first-seen
// order so the breakdown is stable across calls.
func menuCategories(items []types.MenuSnapshotItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out
}
