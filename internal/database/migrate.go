package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/internal/models"
)

// RunMigrations applies the schema. Postgres gets the pgvector extension
// first; sqlite (tests) skips it and stores the embedding column as a blob.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			log.Printf("failed to create vector extension (continuing): %v", err)
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Conversation{},
		&models.Message{},
		&models.Recommendation{},
		&models.SavedMenu{},
	)
}
