// Package menuparse extracts categories, item names and prices from
// free-form menu text (pasted by the operator or produced by upstream PDF
// extraction). The classification is a line-oriented heuristic tuned against
// typical single-column menus; output is a suggestion for the operator to
// review, never ground truth.
package menuparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// categoryKeywords flag a line as a likely section header when it contains
// one of them.
var categoryKeywords = []string{
	"appetizer", "starter", "salad", "soup", "entree", "main", "pasta",
	"pizza", "dessert", "beverage", "drink", "side", "steak", "rib",
	"chicken", "seafood", "fish", "sandwich", "burger", "taco", "wrap",
	"breakfast", "lunch", "dinner", "brunch", "wine", "beer", "cocktail",
	"coffee", "special",
}

// leadInWords mark the start of descriptive text inside an item line. The
// item name is truncated before the first occurrence ("with" is in the
// active list, so "Grilled Salmon With vegetables" yields "Grilled Salmon").
// A lead-in at the very start of the name never truncates, otherwise dishes
// like "Grilled Salmon" would vanish.
var leadInWords = []string{
	"with", "served", "topped", "drizzled", "accompanied", "garnished",
	"finished", "smothered", "stuffed", "crispy", "grilled", "roasted",
	"seasoned", "fresh",
}

var (
	trailingPricePattern = regexp.MustCompile(`\$?\s*(\d+(?:\.\d{2})?)\s*$`)
	dotLeaderPattern     = regexp.MustCompile(`\.{2,}`)
	dividerPattern       = regexp.MustCompile(`^[-=_~*]{3,}\s*$`)
	alphabeticPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z\s&\-']*$`)
	bareDigitsPattern    = regexp.MustCompile(`\d+\s*$`)
	pureNumberPattern    = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Parse runs a single pass over the text and returns the inferred categories
// and items. It is a pure function: the same input always yields the same
// output.
func Parse(text string) *types.ParsedMenu {
	parsed := &types.ParsedMenu{
		Categories: []string{},
		Items:      []types.MenuSnapshotItem{},
	}

	lines := splitLines(text)
	currentCategory := ""
	seenCategories := make(map[string]bool)

	for i, line := range lines {
		nextIsDivider := i+1 < len(lines) && dividerPattern.MatchString(lines[i+1])
		if dividerPattern.MatchString(line) {
			continue
		}

		if isCategoryHeader(line, nextIsDivider) {
			currentCategory = titleCase(strings.ToLower(line))
			if !seenCategories[currentCategory] {
				seenCategories[currentCategory] = true
				parsed.Categories = append(parsed.Categories, currentCategory)
			}
			continue
		}

		if currentCategory == "" {
			continue
		}
		if item, ok := extractItem(line, currentCategory); ok {
			parsed.Items = append(parsed.Items, item)
		}
	}

	// Nothing classified as a header: fall back to scanning the whole text
	// for known category names so the operator at least gets a skeleton.
	if len(parsed.Categories) == 0 {
		parsed.Categories = scanForCategories(text)
	}

	return parsed
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// isCategoryHeader applies the header predicates in order. A line carrying
// any price indicator is never a header.
func isCategoryHeader(line string, nextIsDivider bool) bool {
	if strings.Contains(line, "$") || bareDigitsPattern.MatchString(line) {
		return false
	}

	// All-uppercase section titles: "APPETIZERS".
	if len(line) > 2 && line == strings.ToUpper(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return true
	}

	if alphabeticPattern.MatchString(line) {
		lower := strings.ToLower(line)
		for _, keyword := range categoryKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
		// Short alphabetic lines read as simple category labels.
		if len(line) < 35 {
			return true
		}
	}

	return nextIsDivider && alphabeticPattern.MatchString(line)
}

// extractItem pulls the name and optional trailing price out of an item line.
func extractItem(line, category string) (types.MenuSnapshotItem, bool) {
	var price *float64
	name := line

	if match := trailingPricePattern.FindStringSubmatch(line); match != nil {
		if p, err := strconv.ParseFloat(match[1], 64); err == nil {
			price = &p
			name = strings.TrimSpace(line[:len(line)-len(match[0])])
		}
	}

	name = dotLeaderPattern.ReplaceAllString(name, " ")
	name = strings.ReplaceAll(name, "$", "")
	name = strings.TrimSpace(name)

	// "Name - description" lines keep only the name part.
	if idx := strings.Index(name, " - "); idx > 0 {
		name = name[:idx]
	}
	name = truncateAtLeadIn(name)
	name = strings.Trim(name, " -–—.,:;")

	if len(name) < 3 || pureNumberPattern.MatchString(name) {
		return types.MenuSnapshotItem{}, false
	}

	return types.MenuSnapshotItem{Name: name, Category: category, Price: price}, true
}

// truncateAtLeadIn cuts the name before the first descriptive lead-in word,
// provided it is not the first word.
func truncateAtLeadIn(name string) string {
	words := strings.Fields(name)
	for i := 1; i < len(words); i++ {
		w := strings.ToLower(strings.Trim(words[i], ",.;:"))
		for _, leadIn := range leadInWords {
			if w == leadIn {
				return strings.Join(words[:i], " ")
			}
		}
	}
	return name
}

// scanForCategories is the last-resort pass: report any known category name
// appearing anywhere in the text, with no associated items.
func scanForCategories(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	out := []string{}
	for _, keyword := range categoryKeywords {
		if strings.Contains(lower, keyword) {
			category := titleCase(keyword)
			if !seen[category] {
				seen[category] = true
				out = append(out, category)
			}
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
