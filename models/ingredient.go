package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is one item in a user's fridge inventory. The (user_id, name)
// pair is unique; the composite index is the final authority on duplicates
// regardless of any pre-check in the service layer.
type Ingredient struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_ingredient" json:"user_id"`
	Name           string     `gorm:"size:40;not null;uniqueIndex:idx_user_ingredient" json:"name"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

// IngredientCategory is the admin-curated shelf-life table. One row per
// ingredient name, shared by all users.
type IngredientCategory struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	UserID                uuid.UUID `gorm:"type:varchar(36);not null" json:"user_id"`
	IngredientName        string    `gorm:"size:40;not null;uniqueIndex" json:"ingredient_name"`
	ParentCategory        string    `gorm:"size:20" json:"parent_category,omitempty"`
	ChildCategory         string    `gorm:"size:20" json:"child_category,omitempty"`
	DefaultExpirationDays int       `gorm:"not null;check:default_expiration_days > 0" json:"default_expiration_days"`
	CreatedAt             time.Time `json:"created_at"`
}
