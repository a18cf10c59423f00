package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// MockMenuService is a mock implementation of the IMenuService interface
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) ParseMenuText(text string) *types.ParsedMenu {
	args := m.Called(text)
	return args.Get(0).(*types.ParsedMenu)
}

func (m *MockMenuService) SaveMenu(ctx context.Context, userID uuid.UUID, req *types.SaveMenuRequest) (*models.SavedMenu, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedMenu), args.Error(1)
}

func (m *MockMenuService) GetMenu(ctx context.Context, userID, id uuid.UUID) (*models.SavedMenu, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedMenu), args.Error(1)
}

func (m *MockMenuService) ListMenus(ctx context.Context, userID uuid.UUID) ([]*models.SavedMenu, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SavedMenu), args.Error(1)
}

func (m *MockMenuService) UploadMenuFile(ctx context.Context, userID uuid.UUID, fileName, contentType string, data []byte) (*service.MenuUpload, error) {
	args := m.Called(ctx, userID, fileName, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MenuUpload), args.Error(1)
}
