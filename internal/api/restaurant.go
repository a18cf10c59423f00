package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// RestaurantHandler handles restaurant profile CRUD
type RestaurantHandler struct {
	restaurants service.IRestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler instance
func NewRestaurantHandler(restaurants service.IRestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

// CreateRestaurant handles profile creation
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.CreateRestaurant(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// GetRestaurant returns one profile
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	restaurant, err := h.restaurants.GetRestaurant(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListRestaurants returns all profiles owned by the user
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	restaurants, err := h.restaurants.ListRestaurants(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// UpdateRestaurant applies a partial update to a profile
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := h.restaurants.UpdateRestaurant(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant soft-deletes a profile
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.restaurants.DeleteRestaurant(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete restaurant"})
		return
	}
	c.Status(http.StatusNoContent)
}
