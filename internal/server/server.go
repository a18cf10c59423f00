package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/config"
	"github.com/culinaryco/menucraft/backend/internal/api"
	"github.com/culinaryco/menucraft/backend/internal/generation"
	"github.com/culinaryco/menucraft/backend/internal/middleware"
	"github.com/culinaryco/menucraft/backend/internal/router"
	"github.com/culinaryco/menucraft/backend/internal/service"
)

// generationRateLimit caps how many generation calls a user can make per
// minute. Generation is the only metered surface.
var generationRateLimit = middleware.RateLimitConfig{
	Window:    time.Minute,
	Limit:     10,
	KeyPrefix: "ratelimit:generate",
}

// Server wires the services and handlers together and owns the HTTP listener.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New builds a fully wired server from its external dependencies. s3Config
// may be nil when menu uploads are disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	client := generation.NewHTTPCompletionClient(generation.ClientConfig{
		APIKey:      cfg.LLMAPIKey,
		APIURL:      cfg.LLMAPIURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	}, nil)
	pipeline := generation.NewPipeline(client)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	restaurantService := service.NewRestaurantService(db)
	generationService := service.NewGenerationService(db, redisClient, pipeline, restaurantService)
	menuService := service.NewMenuService(db, s3Config)
	conversationService := service.NewConversationService(db, client, restaurantService)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRateLimiter(redisClient, generationRateLimit)
	}

	engine := router.SetupRouter(router.Handlers{
		Auth:          api.NewAuthHandler(authService),
		Restaurants:   api.NewRestaurantHandler(restaurantService),
		Generation:    api.NewGenerationHandler(generationService),
		Menus:         api.NewMenuHandler(menuService),
		Conversations: api.NewConversationHandler(conversationService),
	}, authService, limiter)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start runs the HTTP listener until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
