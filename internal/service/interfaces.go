package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRestaurantService defines the interface for restaurant profile operations
type IRestaurantService interface {
	CreateRestaurant(ctx context.Context, userID uuid.UUID, req *types.CreateRestaurantRequest) (*models.Restaurant, error)
	GetRestaurant(ctx context.Context, userID, id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context, userID uuid.UUID) ([]*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRestaurantRequest) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, userID, id uuid.UUID) error
}

// IGenerationService defines the interface for AI generation operations
type IGenerationService interface {
	GenerateMenuItems(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateMenuItemsRequest) (*models.Recommendation, *generation.MenuResult, error)
	GenerateCocktails(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateCocktailsRequest) (*models.Recommendation, *generation.CocktailResult, error)
	GetDraft(ctx context.Context, userID, id uuid.UUID) (map[string]interface{}, error)
	DeleteDraft(ctx context.Context, userID, id uuid.UUID) error
	GetRecommendation(ctx context.Context, userID, id uuid.UUID) (*models.Recommendation, error)
	ListRecommendations(ctx context.Context, userID, restaurantID uuid.UUID) ([]*models.Recommendation, error)
}

// IMenuService defines the interface for menu parsing and saved menus
type IMenuService interface {
	ParseMenuText(text string) *types.ParsedMenu
	SaveMenu(ctx context.Context, userID uuid.UUID, req *types.SaveMenuRequest) (*models.SavedMenu, error)
	GetMenu(ctx context.Context, userID, id uuid.UUID) (*models.SavedMenu, error)
	ListMenus(ctx context.Context, userID uuid.UUID) ([]*models.SavedMenu, error)
	UploadMenuFile(ctx context.Context, userID uuid.UUID, fileName, contentType string, data []byte) (*MenuUpload, error)
}

// IConversationService defines the interface for advisor conversations
type IConversationService interface {
	CreateConversation(ctx context.Context, userID uuid.UUID, req *types.CreateConversationRequest) (*models.Conversation, error)
	GetConversation(ctx context.Context, userID, id uuid.UUID) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.Conversation, error)
	PostMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*models.Message, error)
}
