package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// ConversationHandler exposes the advisor conversation endpoints
type ConversationHandler struct {
	conversations service.IConversationService
}

// NewConversationHandler creates a new ConversationHandler instance
func NewConversationHandler(conversations service.IConversationService) *ConversationHandler {
	return &ConversationHandler{conversations: conversations}
}

// CreateConversation starts a new advisor conversation
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conversation, err := h.conversations.CreateConversation(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create conversation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation": conversation})
}

// GetConversation returns one conversation with its messages
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	conversation, err := h.conversations.GetConversation(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conversation})
}

// ListConversations returns the user's conversations
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conversations, err := h.conversations.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// PostMessage appends an operator message and returns the assistant reply
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.conversations.PostMessage(c.Request.Context(), userID, id, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}
