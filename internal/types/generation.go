package types

// PriceTarget is the price tier a menu generation should aim for.
type PriceTarget string

const (
	PriceTargetBudget   PriceTarget = "budget"
	PriceTargetMidRange PriceTarget = "mid-range"
	PriceTargetPremium  PriceTarget = "premium"
)

// Complexity is the requested difficulty tier for generated cocktails.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityAdvanced Complexity = "advanced"
)

// MenuGenerationRequest represents one request for AI-generated menu items.
type MenuGenerationRequest struct {
	Context             *RestaurantContext `json:"context" binding:"required"`
	SpecificRequests    string             `json:"specific_requests"`
	DietaryRestrictions []string           `json:"dietary_restrictions"`
	PriceTarget         PriceTarget        `json:"price_target"`
	SeasonalFocus       string             `json:"seasonal_focus"`
	CategoryFocus       string             `json:"category_focus"`
	CurrentMenu         []MenuSnapshotItem `json:"current_menu"`
	BatchProduction     bool               `json:"batch_production"`
	BatchSize           int                `json:"batch_size"`
	ItemCount           int                `json:"item_count"`
}

// CocktailGenerationRequest represents one request for AI-generated cocktails.
type CocktailGenerationRequest struct {
	Context           *RestaurantContext `json:"context" binding:"required"`
	ThemeOverride     string             `json:"theme_override"`
	BaseSpirits       []string           `json:"base_spirits"`
	Complexity        Complexity         `json:"complexity"`
	Batchable         bool               `json:"batchable"`
	Seasonality       string             `json:"seasonality"`
	ExistingCocktails []string           `json:"existing_cocktails"`
	CocktailCount     int                `json:"cocktail_count"`
}

// Ingredient is one costed ingredient line of a generated menu item.
type Ingredient struct {
	Ingredient string  `json:"ingredient"`
	Amount     string  `json:"amount"`
	Unit       string  `json:"unit"`
	Cost       float64 `json:"cost"`
	Notes      string  `json:"notes,omitempty"`
}

// Recipe is the nested preparation detail of a generated menu item.
type Recipe struct {
	Serves              int      `json:"serves"`
	PrepInstructions    []string `json:"prep_instructions"`
	CookingInstructions []string `json:"cooking_instructions"`
	PlatingInstructions []string `json:"plating_instructions"`
	Techniques          []string `json:"techniques"`
	BatchInstructions   []string `json:"batch_instructions,omitempty"`
	BatchServes         int      `json:"batch_serves,omitempty"`
}

// GeneratedMenuItem represents one normalized menu item produced by the
// generation pipeline. Every field is guaranteed to be populated after
// normalization; numeric fields carry documented defaults when the model
// omitted or mangled them.
type GeneratedMenuItem struct {
	Name                  string       `json:"name"`
	Description           string       `json:"description"`
	Category              string       `json:"category"`
	Ingredients           []Ingredient `json:"ingredients"`
	PreparationTime       int          `json:"preparation_time"`
	Difficulty            string       `json:"difficulty"`
	EstimatedCost         float64      `json:"estimated_cost"`
	SuggestedPrice        float64      `json:"suggested_price"`
	ProfitMargin          float64      `json:"profit_margin"`
	Recipe                Recipe       `json:"recipe"`
	Allergens             []string     `json:"allergens"`
	NutritionalHighlights []string     `json:"nutritional_highlights,omitempty"`
	WinePairings          []string     `json:"wine_pairings,omitempty"`
	UpsellSuggestions     []string     `json:"upsell_suggestions,omitempty"`
}

// CocktailIngredient is one costed ingredient line of a generated cocktail.
type CocktailIngredient struct {
	Ingredient  string  `json:"ingredient"`
	Amount      string  `json:"amount"`
	Unit        string  `json:"unit,omitempty"`
	Cost        float64 `json:"cost"`
	BatchAmount string  `json:"batch_amount,omitempty"`
}

// CocktailVariation is an optional riff on a generated cocktail.
type CocktailVariation struct {
	Name    string   `json:"name"`
	Changes []string `json:"changes"`
}

// GeneratedCocktail represents one normalized cocktail produced by the
// generation pipeline.
type GeneratedCocktail struct {
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Category          string               `json:"category"`
	Ingredients       []CocktailIngredient `json:"ingredients"`
	Instructions      []string             `json:"instructions"`
	Garnish           string               `json:"garnish"`
	Glassware         string               `json:"glassware"`
	EstimatedCost     float64              `json:"estimated_cost"`
	SuggestedPrice    float64              `json:"suggested_price"`
	ProfitMargin      float64              `json:"profit_margin"`
	PreparationTime   int                  `json:"preparation_time"`
	BatchInstructions []string             `json:"batch_instructions,omitempty"`
	BatchYield        string               `json:"batch_yield,omitempty"`
	Variations        []CocktailVariation  `json:"variations,omitempty"`
	FoodPairings      []string             `json:"food_pairings,omitempty"`
}

// ParsedMenu is the output of the heuristic menu text parser. It is a
// suggestion for the operator to review, never applied automatically.
type ParsedMenu struct {
	Categories []string           `json:"categories"`
	Items      []MenuSnapshotItem `json:"items"`
}
