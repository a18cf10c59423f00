package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// MockGenerationService is a mock implementation of the IGenerationService interface
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateMenuItems(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateMenuItemsRequest) (*models.Recommendation, *generation.MenuResult, error) {
	args := m.Called(ctx, userID, restaurantID, req)
	var rec *models.Recommendation
	if args.Get(0) != nil {
		rec = args.Get(0).(*models.Recommendation)
	}
	var result *generation.MenuResult
	if args.Get(1) != nil {
		result = args.Get(1).(*generation.MenuResult)
	}
	return rec, result, args.Error(2)
}

func (m *MockGenerationService) GenerateCocktails(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateCocktailsRequest) (*models.Recommendation, *generation.CocktailResult, error) {
	args := m.Called(ctx, userID, restaurantID, req)
	var rec *models.Recommendation
	if args.Get(0) != nil {
		rec = args.Get(0).(*models.Recommendation)
	}
	var result *generation.CocktailResult
	if args.Get(1) != nil {
		result = args.Get(1).(*generation.CocktailResult)
	}
	return rec, result, args.Error(2)
}

func (m *MockGenerationService) GetDraft(ctx context.Context, userID, id uuid.UUID) (map[string]interface{}, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockGenerationService) DeleteDraft(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockGenerationService) GetRecommendation(ctx context.Context, userID, id uuid.UUID) (*models.Recommendation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

func (m *MockGenerationService) ListRecommendations(ctx context.Context, userID, restaurantID uuid.UUID) ([]*models.Recommendation, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recommendation), args.Error(1)
}
