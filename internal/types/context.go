package types

// RestaurantContext is an immutable snapshot of a restaurant profile passed
// into a generation call. Only Name, Theme, Categories, KitchenCapability and
// StaffSize are required; everything else is optional free text collected from
// the operator's profile and skipped when empty.
type RestaurantContext struct {
	Name              string   `json:"name" binding:"required"`
	Theme             string   `json:"theme" binding:"required"`
	Categories        []string `json:"categories" binding:"required"`
	KitchenCapability string   `json:"kitchen_capability" binding:"required"`
	StaffSize         int      `json:"staff_size" binding:"required"`

	// Business context
	BusinessType    string `json:"business_type"`
	YearsInBusiness string `json:"years_in_business"`
	ServiceStyle    string `json:"service_style"`
	SeatingCapacity string `json:"seating_capacity"`
	PeakHours       string `json:"peak_hours"`

	// Location and market
	Location          string `json:"location"`
	TargetDemographic string `json:"target_demographic"`
	MarketPosition    string `json:"market_position"`
	LocalIngredients  string `json:"local_ingredients"`
	SeasonalNotes     string `json:"seasonal_notes"`

	// Kitchen and operations
	Equipment         []string `json:"equipment"`
	SignatureDishes   []string `json:"signature_dishes"`
	SupplierNotes     string   `json:"supplier_notes"`
	DietaryFocus      string   `json:"dietary_focus"`
	PrepCapacity      string   `json:"prep_capacity"`

	// Financial goals
	AverageTicketPrice string `json:"average_ticket_price"`
	FoodCostGoal       string `json:"food_cost_goal"`
	LaborBudget        string `json:"labor_budget"`
	RevenueGoals       string `json:"revenue_goals"`

	// Competitive positioning
	Competitors     string `json:"competitors"`
	Differentiators string `json:"differentiators"`
	BrandVoice      string `json:"brand_voice"`

	// Challenges and priorities
	Challenges       []string `json:"challenges"`
	Priorities       []string `json:"priorities"`
	CustomerFeedback string   `json:"customer_feedback"`
	ExpansionPlans   string   `json:"expansion_plans"`
}

// MenuSnapshotItem is one entry of the restaurant's current menu, used both as
// prompt context and as the output shape of the menu text parser.
type MenuSnapshotItem struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price,omitempty"`
}
