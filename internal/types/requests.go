package types

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=255"`
	Name     string `json:"name" binding:"required,min=2,max=20"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
	Birth    string `json:"birth" binding:"required"`
	Gender   string `json:"gender" binding:"required,oneof=M F"`
}

// BirthDate parses the birth field.
func (r SignUpRequest) BirthDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, r.Birth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q: expected YYYY-MM-DD", r.Birth)
	}
	return t, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IngredientRequest is one ingredient-add item. An empty expiration_date
// means "no date supplied", which is distinct from any real date.
type IngredientRequest struct {
	Name           string `json:"name" binding:"required,max=40"`
	ExpirationDate string `json:"expiration_date"`
}

// Date returns the parsed expiration date, or nil when none was supplied.
func (r IngredientRequest) Date() (*time.Time, error) {
	if r.ExpirationDate == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, r.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid expiration_date %q: expected YYYY-MM-DD", r.ExpirationDate)
	}
	return &t, nil
}

type BulkIngredientRequest struct {
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

type CategoryRequest struct {
	IngredientName        string `json:"ingredient_name" binding:"required,max=40"`
	ParentCategory        string `json:"parent_category" binding:"max=20"`
	ChildCategory         string `json:"child_category" binding:"max=20"`
	DefaultExpirationDays int    `json:"default_expiration_days" binding:"required,gt=0"`
}

type CategoryExpirationUpdateRequest struct {
	DefaultExpirationDays int `json:"default_expiration_days" binding:"required,gt=0"`
}

// CookingRequest asks for the full recipe of a dish previously suggested.
type CookingRequest struct {
	Food           string   `json:"food" binding:"required"`
	UseIngredients []string `json:"use_ingredients" binding:"required"`
}

// QuickRecipeRequest is a free-form ingredient list typed by the user.
type QuickRecipeRequest struct {
	Chat string `json:"chat" binding:"required"`
}

// SearchRecipeRequest is a dish name typed by the user.
type SearchRecipeRequest struct {
	Chat string `json:"chat" binding:"required"`
}
