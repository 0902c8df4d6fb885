package auth

import "github.com/google/uuid"

// Identity is the caller resolved from a verified bearer token.
type Identity struct {
	UserID uuid.UUID
	// Name is the display name carried in the token. Empty when absent.
	Name string
}
