package types

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRestaurantRequest represents the request body for creating a
// restaurant profile. Attributes carries the optional long-tail profile
// fields keyed the same way RestaurantContext names them.
type CreateRestaurantRequest struct {
	Name              string                 `json:"name" binding:"required"`
	Theme             string                 `json:"theme" binding:"required"`
	Categories        []string               `json:"categories" binding:"required"`
	KitchenCapability string                 `json:"kitchen_capability" binding:"required"`
	StaffSize         int                    `json:"staff_size" binding:"required"`
	Attributes        map[string]interface{} `json:"attributes"`
}

// UpdateRestaurantRequest represents the request body for updating a
// restaurant profile. Zero values mean "leave unchanged".
type UpdateRestaurantRequest struct {
	Name              string                 `json:"name"`
	Theme             string                 `json:"theme"`
	Categories        []string               `json:"categories"`
	KitchenCapability string                 `json:"kitchen_capability"`
	StaffSize         int                    `json:"staff_size"`
	Attributes        map[string]interface{} `json:"attributes"`
}

// GenerateMenuItemsRequest is the HTTP body for a menu generation call; the
// restaurant context itself is loaded from the path restaurant.
type GenerateMenuItemsRequest struct {
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

// GenerateCocktailsRequest is the HTTP body for a cocktail generation call.
type GenerateCocktailsRequest struct {
	ThemeOverride     string     `json:"theme_override"`
	BaseSpirits       []string   `json:"base_spirits"`
	Complexity        Complexity `json:"complexity"`
	Batchable         bool       `json:"batchable"`
	Seasonality       string     `json:"seasonality"`
	ExistingCocktails []string   `json:"existing_cocktails"`
	CocktailCount     int        `json:"cocktail_count"`
}

// ParseMenuTextRequest is the HTTP body for the heuristic menu text parser.
type ParseMenuTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// SaveMenuRequest persists a reviewed parse result (or any operator-edited
// menu) for a restaurant.
type SaveMenuRequest struct {
	RestaurantID string             `json:"restaurant_id" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	Categories   []string           `json:"categories"`
	Items        []MenuSnapshotItem `json:"items"`
	SourceFile   string             `json:"source_file"`
}

// CreateConversationRequest starts a conversation about a restaurant.
type CreateConversationRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Title        string `json:"title"`
}

// PostMessageRequest appends an operator message to a conversation.
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
