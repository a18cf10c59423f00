package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Recommendation is one persisted generation result (menu items, cocktails
// or operational advice) tied to a restaurant. Payload carries the full
// normalized entity list as returned to the client; the embedding supports
// similarity lookups against earlier recommendations.
type Recommendation struct {
	ID           uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	UserID       uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RestaurantID uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Kind         string          `gorm:"size:30;not null" json:"kind"`
	Title        string          `gorm:"size:255" json:"title"`
	Payload      JSONBMap        `gorm:"type:jsonb;not null;default:'{}'" json:"payload"`
	Fallback     bool            `gorm:"not null;default:false" json:"fallback"`
	Embedding    pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

const (
	RecommendationKindMenuItems = "menu_items"
	RecommendationKindCocktails = "cocktails"
)
