package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation groups the messages an operator exchanges with the assistant
// about one restaurant.
type Conversation struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RestaurantID uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Title        string         `gorm:"size:255" json:"title"`
	Messages     []Message      `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

type Message struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	ConversationID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"conversation_id"`
	Role           string    `gorm:"size:20;not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
}
