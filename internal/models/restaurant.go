package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the persisted profile a RestaurantContext snapshot is built
// from. The long tail of optional profile attributes lives in the Attributes
// JSONB column so profile edits don't require migrations.
type Restaurant struct {
	ID                uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID            uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Theme             string           `gorm:"size:255;not null" json:"theme"`
	Categories        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"categories"`
	KitchenCapability string           `gorm:"type:text;not null" json:"kitchen_capability"`
	StaffSize         int              `gorm:"not null" json:"staff_size"`
	Attributes        JSONBMap         `gorm:"type:jsonb;not null;default:'{}'" json:"attributes"`
}
