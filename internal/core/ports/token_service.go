package ports

import "github.com/gamestore/game-store-api/internal/core/domain"

// TokenService issues and validates the bearer tokens used by the API.
type TokenService interface {
	// Issue signs a token for the user. The subject is the login email.
	Issue(user *domain.User) (string, error)
	// Validate verifies a token and returns its subject (the email).
	// Any failure returns domain.ErrInvalidToken without further detail.
	Validate(token string) (string, error)
}
