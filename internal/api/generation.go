package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// GenerationHandler exposes the menu-item and cocktail generation endpoints
// plus draft and recommendation retrieval.
type GenerationHandler struct {
	generation service.IGenerationService
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(generation service.IGenerationService) *GenerationHandler {
	return &GenerationHandler{generation: generation}
}

// GenerateMenuItems runs the menu-item generation pipeline for a restaurant
func (h *GenerationHandler) GenerateMenuItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.GenerateMenuItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, result, err := h.generation.GenerateMenuItems(c.Request.Context(), userID, restaurantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation_id": rec.ID,
		"items":             result.Items,
		"fallback":          result.Fallback,
	})
}

// GenerateCocktails runs the cocktail generation pipeline for a restaurant
func (h *GenerationHandler) GenerateCocktails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.GenerateCocktailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, result, err := h.generation.GenerateCocktails(c.Request.Context(), userID, restaurantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate cocktails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation_id": rec.ID,
		"cocktails":         result.Cocktails,
		"fallback":          result.Fallback,
	})
}

// GetDraft returns the cached draft for a recommendation
func (h *GenerationHandler) GetDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	draft, err := h.generation.GetDraft(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft discards the cached draft for a recommendation
func (h *GenerationHandler) DeleteDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.generation.DeleteDraft(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete draft"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRecommendation returns one stored recommendation
func (h *GenerationHandler) GetRecommendation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	rec, err := h.generation.GetRecommendation(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recommendation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recommendation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

// ListRecommendations returns the stored recommendations for a restaurant
func (h *GenerationHandler) ListRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	restaurantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recs, err := h.generation.ListRecommendations(c.Request.Context(), userID, restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recommendations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
