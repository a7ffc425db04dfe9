package models

import (
	"time"

	"github.com/google/uuid"
)

// ManualExpirationEvent distinguishes why a user-supplied date was logged.
type ManualExpirationEvent string

const (
	// ManualEventUnknown: the user supplied a date but no category entry existed.
	ManualEventUnknown ManualExpirationEvent = "unknown"
	// ManualEventDifferent: the supplied date disagreed with the category default.
	ManualEventDifferent ManualExpirationEvent = "different"
)

// ManualExpirationLog is an append-only record of user-supplied expiration
// dates that filled or contradicted the category table. DayOffset is the
// signed number of days between the supplied date and the day it was logged,
// kept as an offset rather than a date so deviations stay comparable over time.
type ManualExpirationLog struct {
	ID             uint                  `gorm:"primarykey" json:"id"`
	UserID         uuid.UUID             `gorm:"type:varchar(36);not null;index" json:"user_id"`
	IngredientName string                `gorm:"size:40;not null" json:"ingredient_name"`
	DayOffset      int                   `gorm:"not null" json:"day_offset"`
	EventType      ManualExpirationEvent `gorm:"size:10;not null" json:"event_type"`
	CreatedAt      time.Time             `json:"created_at"`
}

// UnrecognizedIngredientLog is an append-only record of ingredient names the
// category table knows nothing about, written when the user supplied no date
// either. Feeds later curation of the category table.
type UnrecognizedIngredientLog struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	IngredientName string    `gorm:"size:40;not null" json:"ingredient_name"`
	CreatedAt      time.Time `json:"created_at"`
}
