package types

import "github.com/google/uuid"

// TokenClaims is the validated content of an access token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
