package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

var ErrConversationNotFound = errors.New("conversation not found")

const advisorSystemPrompt = `You are a seasoned restaurant operations consultant. You give specific, practical recommendations about menus, pricing, staffing and operations, grounded in the restaurant profile you are given. Keep answers concise and actionable.`

// retryMessage is shown instead of a raw error when the assistant call fails.
const retryMessage = "I wasn't able to put together a recommendation just now. Please try again in a moment."

// ConversationService manages advisor conversations. Assistant replies come
// straight from the completion client as prose; the JSON repair pipeline is
// only for structured generation.
type ConversationService struct {
	db          *gorm.DB
	client      generation.CompletionClient
	restaurants *RestaurantService
}

// NewConversationService creates a new ConversationService instance.
func NewConversationService(db *gorm.DB, client generation.CompletionClient, restaurants *RestaurantService) *ConversationService {
	return &ConversationService{db: db, client: client, restaurants: restaurants}
}

// CreateConversation starts a conversation about a restaurant.
func (s *ConversationService) CreateConversation(ctx context.Context, userID uuid.UUID, req *types.CreateConversationRequest) (*models.Conversation, error) {
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant_id: %w", err)
	}
	if _, err := s.restaurants.GetRestaurant(ctx, userID, restaurantID); err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "New conversation"
	}

	conversation := &models.Conversation{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Title:        title,
	}
	if err := s.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

// GetConversation loads one conversation with its messages.
func (s *ConversationService) GetConversation(ctx context.Context, userID, id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// ListConversations returns the user's conversations, newest first.
func (s *ConversationService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("updated_at desc").Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

// PostMessage appends the operator's message and produces an assistant reply
// grounded in the restaurant profile. A failed completion never surfaces as
// an error; the assistant asks the operator to try again instead.
func (s *ConversationService) PostMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*models.Message, error) {
	conversation, err := s.GetConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	userMessage := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		Role:           "user",
		Content:        content,
	}
	if err := s.db.WithContext(ctx).Create(userMessage).Error; err != nil {
		return nil, err
	}

	reply := retryMessage
	restaurant, err := s.restaurants.GetRestaurant(ctx, userID, conversation.RestaurantID)
	if err == nil {
		contextText := generation.BuildContextText(ContextFromRestaurant(restaurant), nil)
		prompt := contextText + "\nOperator question: " + content
		if answer, err := s.client.Complete(ctx, advisorSystemPrompt, prompt); err == nil && answer != "" {
			reply = answer
		} else if err != nil {
			log.Printf("[ConversationService] advisor completion failed: %v", err)
		}
	}

	assistantMessage := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		Role:           "assistant",
		Content:        reply,
	}
	if err := s.db.WithContext(ctx).Create(assistantMessage).Error; err != nil {
		return nil, err
	}
	return assistantMessage, nil
}
