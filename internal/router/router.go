package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/culinaryco/menucraft/backend/internal/api"
	"github.com/culinaryco/menucraft/backend/internal/middleware"
)

// Handlers bundles the API handlers the router wires up.
type Handlers struct {
	Auth          *api.AuthHandler
	Restaurants   *api.RestaurantHandler
	Generation    *api.GenerationHandler
	Menus         *api.MenuHandler
	Conversations *api.ConversationHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		restaurants := protected.Group("/restaurants")
		{
			restaurants.POST("", h.Restaurants.CreateRestaurant)
			restaurants.GET("", h.Restaurants.ListRestaurants)
			restaurants.GET("/:id", h.Restaurants.GetRestaurant)
			restaurants.PUT("/:id", h.Restaurants.UpdateRestaurant)
			restaurants.DELETE("/:id", h.Restaurants.DeleteRestaurant)
			restaurants.GET("/:id/recommendations", h.Generation.ListRecommendations)

			// Generation endpoints are the expensive ones; they sit behind
			// the Redis rate limiter.
			generate := restaurants.Group("/:id/generate")
			if limiter != nil {
				generate.Use(limiter.RateLimitMiddleware())
			}
			{
				generate.POST("/menu-items", h.Generation.GenerateMenuItems)
				generate.POST("/cocktails", h.Generation.GenerateCocktails)
			}
		}

		generations := protected.Group("/generations")
		{
			generations.GET("/drafts/:id", h.Generation.GetDraft)
			generations.DELETE("/drafts/:id", h.Generation.DeleteDraft)
			generations.GET("/:id", h.Generation.GetRecommendation)
		}

		menus := protected.Group("/menus")
		{
			menus.POST("/parse", h.Menus.ParseMenuText)
			menus.POST("/upload", h.Menus.UploadMenuFile)
			menus.POST("", h.Menus.SaveMenu)
			menus.GET("", h.Menus.ListMenus)
			menus.GET("/:id", h.Menus.GetMenu)
		}

		conversations := protected.Group("/conversations")
		{
			conversations.POST("", h.Conversations.CreateConversation)
			conversations.GET("", h.Conversations.ListConversations)
			conversations.GET("/:id", h.Conversations.GetConversation)
			conversations.POST("/:id/messages", h.Conversations.PostMessage)
		}
	}

	return router
}
