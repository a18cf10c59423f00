package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/culinaryco/menucraft/backend/internal/api"
	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/mocks"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

func setupGenerationRoutes(router *gin.Engine, svc *mocks.MockGenerationService) {
	handler := api.NewGenerationHandler(svc)
	router.POST("/restaurants/:id/generate/menu-items", handler.GenerateMenuItems)
	router.POST("/restaurants/:id/generate/cocktails", handler.GenerateCocktails)
	router.GET("/restaurants/:id/recommendations", handler.ListRecommendations)
	router.GET("/generations/drafts/:id", handler.GetDraft)
	router.DELETE("/generations/drafts/:id", handler.DeleteDraft)
	router.GET("/generations/:id", handler.GetRecommendation)
}

func TestGenerationHandlerMenuItems(t *testing.T) {
	userID := uuid.New()
	restaurantID := uuid.New()
	recID := uuid.New()

	t.Run("success includes fallback flag", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("GenerateMenuItems", mock.Anything, userID, restaurantID, mock.Anything).
			Return(
				&models.Recommendation{ID: recID},
				&generation.MenuResult{Items: []types.GeneratedMenuItem{{Name: "Duck Confit"}}, Fallback: true},
				nil,
			)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodPost, "/restaurants/"+restaurantID.String()+"/generate/menu-items", map[string]interface{}{})
		requireStatus(t, w, http.StatusOK)

		body := decodeBody(t, w)
		assert.Equal(t, recID.String(), body["recommendation_id"])
		assert.Equal(t, true, body["fallback"])
		assert.Len(t, body["items"], 1)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("GenerateMenuItems", mock.Anything, userID, restaurantID, mock.Anything).
			Return(nil, nil, service.ErrRestaurantNotFound)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodPost, "/restaurants/"+restaurantID.String()+"/generate/menu-items", map[string]interface{}{})
		requireStatus(t, w, http.StatusNotFound)
	})

	t.Run("malformed restaurant id", func(t *testing.T) {
		router := newTestRouter(userID)
		setupGenerationRoutes(router, new(mocks.MockGenerationService))

		w := performJSON(t, router, http.MethodPost, "/restaurants/nope/generate/menu-items", map[string]interface{}{})
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestGenerationHandlerCocktails(t *testing.T) {
	userID := uuid.New()
	restaurantID := uuid.New()
	recID := uuid.New()

	svc := new(mocks.MockGenerationService)
	svc.On("GenerateCocktails", mock.Anything, userID, restaurantID, mock.Anything).
		Return(
			&models.Recommendation{ID: recID},
			&generation.CocktailResult{Cocktails: []types.GeneratedCocktail{{Name: "Sazerac"}}},
			nil,
		)
	router := newTestRouter(userID)
	setupGenerationRoutes(router, svc)

	w := performJSON(t, router, http.MethodPost, "/restaurants/"+restaurantID.String()+"/generate/cocktails", map[string]interface{}{})
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["fallback"])
	assert.Len(t, body["cocktails"], 1)
}

func TestGenerationHandlerDrafts(t *testing.T) {
	userID := uuid.New()
	recID := uuid.New()

	t.Run("get draft", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("GetDraft", mock.Anything, userID, recID).
			Return(map[string]interface{}{"items": []interface{}{}}, nil)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodGet, "/generations/drafts/"+recID.String(), nil)
		requireStatus(t, w, http.StatusOK)
		assert.Contains(t, decodeBody(t, w)["draft"], "items")
	})

	t.Run("draft not found", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("GetDraft", mock.Anything, userID, recID).
			Return(nil, service.ErrRecommendationNotFound)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodGet, "/generations/drafts/"+recID.String(), nil)
		requireStatus(t, w, http.StatusNotFound)
	})

	t.Run("delete draft", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("DeleteDraft", mock.Anything, userID, recID).Return(nil)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodDelete, "/generations/drafts/"+recID.String(), nil)
		requireStatus(t, w, http.StatusNoContent)
	})

	t.Run("delete draft owned by someone else", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("DeleteDraft", mock.Anything, userID, recID).
			Return(service.ErrRecommendationNotFound)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodDelete, "/generations/drafts/"+recID.String(), nil)
		requireStatus(t, w, http.StatusNotFound)
	})
}

func TestGenerationHandlerRecommendations(t *testing.T) {
	userID := uuid.New()
	restaurantID := uuid.New()
	recID := uuid.New()

	t.Run("get recommendation", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("GetRecommendation", mock.Anything, userID, recID).
			Return(&models.Recommendation{ID: recID, Kind: models.RecommendationKindMenuItems}, nil)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodGet, "/generations/"+recID.String(), nil)
		requireStatus(t, w, http.StatusOK)
	})

	t.Run("list recommendations", func(t *testing.T) {
		svc := new(mocks.MockGenerationService)
		svc.On("ListRecommendations", mock.Anything, userID, restaurantID).
			Return([]*models.Recommendation{{ID: recID}}, nil)
		router := newTestRouter(userID)
		setupGenerationRoutes(router, svc)

		w := performJSON(t, router, http.MethodGet, "/restaurants/"+restaurantID.String()+"/recommendations", nil)
		requireStatus(t, w, http.StatusOK)
		assert.Len(t, decodeBody(t, w)["recommendations"], 1)
	})
}
