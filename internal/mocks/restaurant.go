package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// MockRestaurantService is a mock implementation of the IRestaurantService interface
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) CreateRestaurant(ctx context.Context, userID uuid.UUID, req *types.CreateRestaurantRequest) (*models.Restaurant, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetRestaurant(ctx context.Context, userID, id uuid.UUID) (*models.Restaurant, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) ListRestaurants(ctx context.Context, userID uuid.UUID) ([]*models.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) UpdateRestaurant(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRestaurantRequest) (*models.Restaurant, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) DeleteRestaurant(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
