package types

import (
	"github.com/google/uuid"

	"github.com/pantrychef/backend/models"
)

// IngredientSchema is the public representation of one ingredient.
type IngredientSchema struct {
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	ExpirationDate *string   `json:"expiration_date"`
}

func NewIngredientSchema(ing models.Ingredient) IngredientSchema {
	s := IngredientSchema{
		UserID: ing.UserID,
		Name:   ing.Name,
	}
	if ing.ExpirationDate != nil {
		d := ing.ExpirationDate.Format(DateLayout)
		s.ExpirationDate = &d
	}
	return s
}

type IngredientListSchema struct {
	Ingredients []IngredientSchema `json:"ingredients"`
}

// BulkCreateResult aggregates one bulk intake call. Duplicates are reported
// by name, never as a hard failure.
type BulkCreateResult struct {
	Created           []IngredientSchema `json:"created"`
	SkippedDuplicates []string           `json:"skipped_duplicates"`
	Message           string             `json:"message"`
}

type UserSchema struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Nickname string    `json:"nickname"`
}

func NewUserSchema(u *models.User) UserSchema {
	return UserSchema{ID: u.ID, Email: u.Email, Name: u.Name, Nickname: u.Nickname}
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CategorySchema struct {
	IngredientName        string `json:"ingredient_name"`
	ParentCategory        string `json:"parent_category,omitempty"`
	ChildCategory         string `json:"child_category,omitempty"`
	DefaultExpirationDays int    `json:"default_expiration_days"`
}

func NewCategorySchema(c models.IngredientCategory) CategorySchema {
	return CategorySchema{
		IngredientName:        c.IngredientName,
		ParentCategory:        c.ParentCategory,
		ChildCategory:         c.ChildCategory,
		DefaultExpirationDays: c.DefaultExpirationDays,
	}
}

type CategoryListSchema struct {
	Categories []CategorySchema `json:"categories"`
}
