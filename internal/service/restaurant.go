package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// CreateRestaurant persists a new restaurant profile for the user.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, userID uuid.UUID, req *types.CreateRestaurantRequest) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              req.Name,
		Theme:             req.Theme,
		Categories:        models.JSONBStringArray(req.Categories),
		KitchenCapability: req.KitchenCapability,
		StaffSize:         req.StaffSize,
		Attributes:        models.JSONBMap(req.Attributes),
	}
	if restaurant.Attributes == nil {
		restaurant.Attributes = models.JSONBMap{}
	}
	if err := s.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// GetRestaurant loads one restaurant owned by the user.
func (s *RestaurantService) GetRestaurant(ctx context.Context, userID, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListRestaurants returns all restaurants owned by the user.
func (s *RestaurantService) ListRestaurants(ctx context.Context, userID uuid.UUID) ([]*models.Restaurant, error) {
	var restaurants []*models.Restaurant
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// UpdateRestaurant applies non-zero fields of the request to the profile.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRestaurantRequest) (*models.Restaurant, error) {
	restaurant, err := s.GetRestaurant(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Theme != "" {
		restaurant.Theme = req.Theme
	}
	if len(req.Categories) > 0 {
		restaurant.Categories = models.JSONBStringArray(req.Categories)
	}
	if req.KitchenCapability != "" {
		restaurant.KitchenCapability = req.KitchenCapability
	}
	if req.StaffSize > 0 {
		restaurant.StaffSize = req.StaffSize
	}
	if req.Attributes != nil {
		restaurant.Attributes = models.JSONBMap(req.Attributes)
	}

	if err := s.db.WithContext(ctx).Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurant soft-deletes the profile.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Restaurant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

// ContextFromRestaurant builds the immutable context snapshot a generation
// call consumes. Optional attributes round-trip through JSON so the profile's
// long tail maps onto the context fields by their json names.
func ContextFromRestaurant(restaurant *models.Restaurant) *types.RestaurantContext {
	rc := &types.RestaurantContext{}
	if len(restaurant.Attributes) > 0 {
		if data, err := json.Marshal(restaurant.Attributes); err == nil {
			_ = json.Unmarshal(data, rc)
		}
	}
	rc.Name = restaurant.Name
	rc.Theme = restaurant.Theme
	rc.Categories = []string(restaurant.Categories)
	rc.KitchenCapability = restaurant.KitchenCapability
	rc.StaffSize = restaurant.StaffSize
	return rc
}
