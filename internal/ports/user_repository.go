package ports

import (
	"city-explorer-service/internal/domain"
	"context"
	"errors"
)

// Returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// Port: a boundary for persisting accounts created through signup.
type UserRepository interface {
	// Store a new user and return it with ID and CreatedAt populated.
	CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error)
}
