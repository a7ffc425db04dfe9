package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialProvider marks which OAuth provider an account was created through.
// Empty for local email/password accounts.
type SocialProvider string

const (
	SocialGoogle SocialProvider = "G"
	SocialNaver  SocialProvider = "N"
	SocialKakao  SocialProvider = "K"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Email        string         `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Name         string         `gorm:"size:20;not null" json:"name"`
	Nickname     string         `gorm:"size:70;uniqueIndex;not null" json:"nickname"`
	Birth        time.Time      `gorm:"type:date;not null" json:"birth"`
	Gender       string         `gorm:"size:1" json:"gender"`
	SocialAuth   SocialProvider `gorm:"size:1" json:"social_auth,omitempty"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"-"`

	// Deleting a user removes everything they own.
	Ingredients       []Ingredient                `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ManualExpirations []ManualExpirationLog       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UnrecognizedAdds  []UnrecognizedIngredientLog `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
