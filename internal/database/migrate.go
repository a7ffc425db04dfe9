package database

import (
	"gorm.io/gorm"

	"github.com/pantrychef/backend/models"
)

// RunMigrations creates or updates the schema for every owned entity.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.IngredientCategory{},
		&models.ManualExpirationLog{},
		&models.UnrecognizedIngredientLog{},
	)
}
