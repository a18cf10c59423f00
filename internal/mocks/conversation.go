package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// MockConversationService is a mock implementation of the IConversationService interface
type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) CreateConversation(ctx context.Context, userID uuid.UUID, req *types.CreateConversationRequest) (*models.Conversation, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationService) GetConversation(ctx context.Context, userID, id uuid.UUID) (*models.Conversation, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Conversation), args.Error(1)
}

func (m *MockConversationService) PostMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*models.Message, error) {
	args := m.Called(ctx, userID, conversationID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}
