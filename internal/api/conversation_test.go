package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/api"
	"github.com/culinaryco/menucraft/backend/internal/mocks"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/service"
)

func setupConversationRoutes(router *gin.Engine, conversations *mocks.MockConversationService) {
	handler := api.NewConversationHandler(conversations)
	router.POST("/conversations", handler.CreateConversation)
	router.GET("/conversations", handler.ListConversations)
	router.GET("/conversations/:id", handler.GetConversation)
	router.POST("/conversations/:id/messages", handler.PostMessage)
}

func TestConversationHandler(t *testing.T) {
	userID := uuid.New()
	conversationID := uuid.New()

	t.Run("create", func(t *testing.T) {
		conversations := new(mocks.MockConversationService)
		conversations.On("CreateConversation", mock.Anything, userID, mock.Anything).
			Return(&models.Conversation{ID: conversationID, Title: "Pricing questions"}, nil)
		router := newTestRouter(userID)
		setupConversationRoutes(router, conversations)

		w := performJSON(t, router, http.MethodPost, "/conversations", map[string]string{
			"restaurant_id": uuid.New().String(),
			"title":         "Pricing questions",
		})
		requireStatus(t, w, http.StatusCreated)
	})

	t.Run("create for unknown restaurant", func(t *testing.T) {
		conversations := new(mocks.MockConversationService)
		conversations.On("CreateConversation", mock.Anything, userID, mock.Anything).
			Return(nil, service.ErrRestaurantNotFound)
		router := newTestRouter(userID)
		setupConversationRoutes(router, conversations)

		w := performJSON(t, router, http.MethodPost, "/conversations", map[string]string{
			"restaurant_id": uuid.New().String(),
		})
		requireStatus(t, w, http.StatusNotFound)
	})

	t.Run("post message returns the assistant reply", func(t *testing.T) {
		conversations := new(mocks.MockConversationService)
		conversations.On("PostMessage", mock.Anything, userID, conversationID, "Should I raise prices?").
			Return(&models.Message{Role: "assistant", Content: "Yes, modestly."}, nil)
		router := newTestRouter(userID)
		setupConversationRoutes(router, conversations)

		w := performJSON(t, router, http.MethodPost, "/conversations/"+conversationID.String()+"/messages", map[string]string{
			"content": "Should I raise prices?",
		})
		requireStatus(t, w, http.StatusCreated)

		message := decodeBody(t, w)["message"].(map[string]interface{})
		assert.Equal(t, "assistant", message["role"])
	})

	t.Run("post empty message fails binding", func(t *testing.T) {
		router := newTestRouter(userID)
		setupConversationRoutes(router, new(mocks.MockConversationService))

		w := performJSON(t, router, http.MethodPost, "/conversations/"+conversationID.String()+"/messages", map[string]string{})
		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("get unknown conversation", func(t *testing.T) {
		conversations := new(mocks.MockConversationService)
		conversations.On("GetConversation", mock.Anything, userID, conversationID).
			Return(nil, service.ErrConversationNotFound)
		router := newTestRouter(userID)
		setupConversationRoutes(router, conversations)

		w := performJSON(t, router, http.MethodGet, "/conversations/"+conversationID.String(), nil)
		requireStatus(t, w, http.StatusNotFound)
	})

	t.Run("list", func(t *testing.T) {
		conversations := new(mocks.MockConversationService)
		conversations.On("ListConversations", mock.Anything, userID).
			Return([]*models.Conversation{{ID: conversationID}}, nil)
		router := newTestRouter(userID)
		setupConversationRoutes(router, conversations)

		w := performJSON(t, router, http.MethodGet, "/conversations", nil)
		requireStatus(t, w, http.StatusOK)
		assert.Len(t, decodeBody(t, w)["conversations"], 1)
	})
}
