package main

import (
	"context"
	"log"

	"github.com/culinaryco/menucraft/backend/config"
	"github.com/culinaryco/menucraft/backend/internal/database"
	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// Seeds a demo operator account with one restaurant profile for local
// development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)
	restaurantService := service.NewRestaurantService(db)

	token, err := authService.Register(ctx, "Demo Operator", "demo@menucraft.local", "demo-password-123")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	claims, err := authService.ValidateToken(token)
	if err != nil {
		log.Fatalf("Failed to read demo token: %v", err)
	}

	restaurant, err := restaurantService.CreateRestaurant(ctx, claims.UserID, &types.CreateRestaurantRequest{
		Name:              "The Copper Kettle",
		Theme:             "modern American bistro",
		Categories:        []string{"Appetizers", "Entrees", "Desserts"},
		KitchenCapability: "full",
		StaffSize:         12,
		Attributes: map[string]interface{}{
			"location":           "Portland, OR",
			"price_point":        "mid-range",
			"signature_dishes":   []string{"Cast Iron Ribeye", "Smoked Trout Dip"},
			"target_demographic": "young professionals",
		},
	})
	if err != nil {
		log.Fatalf("Failed to create demo restaurant: %v", err)
	}

	log.Printf("Seeded demo operator demo@menucraft.local with restaurant %s (%s)", restaurant.Name, restaurant.ID)
}
