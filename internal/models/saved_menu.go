package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/internal/types"
)

// SavedMenuItems stores the item list as a single JSONB column since it is
// always read and written as a unit.
type SavedMenuItems []types.MenuSnapshotItem

// Value implements the driver.Valuer interface
func (s SavedMenuItems) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *SavedMenuItems) Scan(value interface{}) error {
	if value == nil {
		*s = SavedMenuItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// SavedMenu is a reviewed (possibly operator-edited) menu, typically seeded
// from heuristic parser output.
type SavedMenu struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID       uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RestaurantID uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Categories   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"categories"`
	Items        SavedMenuItems   `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	SourceFile   string           `gorm:"size:255" json:"source_file,omitempty"`
}
