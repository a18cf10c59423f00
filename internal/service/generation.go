package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

const draftTTL = 24 * time.Hour

// GenerationService runs the generation pipeline for a stored restaurant,
// persists the results as recommendations, and keeps a short-lived draft copy
// in Redis so the frontend can re-fetch a result it is still editing.
type GenerationService struct {
	db          *gorm.DB
	redis       *redis.Client
	pipeline    *generation.Pipeline
	restaurants *RestaurantService
}

// NewGenerationService creates a new GenerationService instance.
func NewGenerationService(db *gorm.DB, redisClient *redis.Client, pipeline *generation.Pipeline, restaurants *RestaurantService) *GenerationService {
	return &GenerationService{
		db:          db,
		redis:       redisClient,
		pipeline:    pipeline,
		restaurants: restaurants,
	}
}

// GenerateMenuItems runs the pipeline against the stored restaurant profile
// and persists the result.
func (s *GenerationService) GenerateMenuItems(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateMenuItemsRequest) (*models.Recommendation, *generation.MenuResult, error) {
	restaurant, err := s.restaurants.GetRestaurant(ctx, userID, restaurantID)
	if err != nil {
		return nil, nil, err
	}

	pipelineReq := &types.MenuGenerationRequest{
		Context:             ContextFromRestaurant(restaurant),
		SpecificRequests:    req.SpecificRequests,
		DietaryRestrictions: req.DietaryRestrictions,
		PriceTarget:         req.PriceTarget,
		SeasonalFocus:       req.SeasonalFocus,
		CategoryFocus:       req.CategoryFocus,
		CurrentMenu:         req.CurrentMenu,
		BatchProduction:     req.BatchProduction,
		BatchSize:           req.BatchSize,
		ItemCount:           req.ItemCount,
	}

	result, err := s.pipeline.GenerateMenuItems(ctx, pipelineReq)
	if err != nil {
		return nil, nil, err
	}

	title := fmt.Sprintf("Menu items for %s", restaurant.Name)
	rec, err := s.saveRecommendation(ctx, userID, restaurantID, models.RecommendationKindMenuItems, title, result, result.Fallback)
	if err != nil {
		return nil, nil, err
	}
	return rec, result, nil
}

// GenerateCocktails runs the pipeline against the stored restaurant profile
// and persists the result.
func (s *GenerationService) GenerateCocktails(ctx context.Context, userID, restaurantID uuid.UUID, req *types.GenerateCocktailsRequest) (*models.Recommendation, *generation.CocktailResult, error) {
	restaurant, err := s.restaurants.GetRestaurant(ctx, userID, restaurantID)
	if err != nil {
		return nil, nil, err
	}

	pipelineReq := &types.CocktailGenerationRequest{
		Context:           ContextFromRestaurant(restaurant),
		ThemeOverride:     req.ThemeOverride,
		BaseSpirits:       req.BaseSpirits,
		Complexity:        req.Complexity,
		Batchable:         req.Batchable,
		Seasonality:       req.Seasonality,
		ExistingCocktails: req.ExistingCocktails,
		CocktailCount:     req.CocktailCount,
	}

	result, err := s.pipeline.GenerateCocktails(ctx, pipelineReq)
	if err != nil {
		return nil, nil, err
	}

	title := fmt.Sprintf("Cocktails for %s", restaurant.Name)
	rec, err := s.saveRecommendation(ctx, userID, restaurantID, models.RecommendationKindCocktails, title, result, result.Fallback)
	if err != nil {
		return nil, nil, err
	}
	return rec, result, nil
}

// saveRecommendation persists the payload and caches a draft copy in Redis.
// A Redis failure only loses the draft cache, never the generation result.
func (s *GenerationService) saveRecommendation(ctx context.Context, userID, restaurantID uuid.UUID, kind, title string, payload interface{}, fallback bool) (*models.Recommendation, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendation payload: %w", err)
	}
	var payloadMap models.JSONBMap
	if err := json.Unmarshal(data, &payloadMap); err != nil {
		return nil, fmt.Errorf("failed to shape recommendation payload: %w", err)
	}

	rec := &models.Recommendation{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Kind:         kind,
		Title:        title,
		Payload:      payloadMap,
		Fallback:     fallback,
		Embedding:    GenerateEmbedding(title),
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}

	if s.redis != nil {
		key := fmt.Sprintf("recommendation:draft:%s", rec.ID)
		if err := s.redis.Set(ctx, key, data, draftTTL).Err(); err != nil {
			log.Printf("[GenerationService] failed to cache draft %s: %v", rec.ID, err)
		}
	}
	return rec, nil
}

// GetDraft retrieves a cached generation draft from Redis, falling back to
// the persisted recommendation when the draft has expired. Ownership is
// checked against the stored recommendation before any cached data is
// returned.
func (s *GenerationService) GetDraft(ctx context.Context, userID, id uuid.UUID) (map[string]interface{}, error) {
	rec, err := s.GetRecommendation(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		key := fmt.Sprintf("recommendation:draft:%s", id)
		if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var draft map[string]interface{}
			if err := json.Unmarshal(data, &draft); err == nil {
				return draft, nil
			}
		}
	}

	return map[string]interface{}(rec.Payload), nil
}

// DeleteDraft removes a cached generation draft from Redis. The caller must
// own the underlying recommendation.
func (s *GenerationService) DeleteDraft(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetRecommendation(ctx, userID, id); err != nil {
		return err
	}
	if s.redis == nil {
		return nil
	}
	key := fmt.Sprintf("recommendation:draft:%s", id)
	return s.redis.Del(ctx, key).Err()
}

// GetRecommendation loads one persisted recommendation owned by the user.
func (s *GenerationService) GetRecommendation(ctx context.Context, userID, id uuid.UUID) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListRecommendations returns the generation history for a restaurant.
func (s *GenerationService) ListRecommendations(ctx context.Context, userID, restaurantID uuid.UUID) ([]*models.Recommendation, error) {
	var recs []*models.Recommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
