package services

import (
	"city-explorer-service/internal/platform/obs"
	"city-explorer-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidSignup = errors.New("invalid signup")

// bcrypt rejects passwords longer than this many bytes.
const maxPasswordBytes = 72

var validate = validator.New()

type SignupRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
}

// SignupError names the request field that failed validation. It matches ErrInvalidSignup.
type SignupError struct {
	Field string
}

func (e *SignupError) Error() string {
	return "invalid " + e.Field
}

func (e *SignupError) Is(target error) bool {
	return target == ErrInvalidSignup
}

// SignupResult carries the created user's id and an opaque session token.
// Tokens are not persisted or checked anywhere; auth is a stub.
type SignupResult struct {
	UserID int64
	Email  string
	Token  string
}

// Signup registers an account and issues a session token.
func Signup(ctx context.Context, repo ports.UserRepository, req SignupRequest) (_ SignupResult, err error) {
	defer obs.Time(ctx, "services.Signup")(&err)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateSignup(req); err != nil {
		return SignupResult{}, fmt.Errorf("signup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return SignupResult{}, fmt.Errorf("signup: %w", &SignupError{Field: "password"})
	}
	if err != nil {
		return SignupResult{}, fmt.Errorf("signup: hash password: %w", err)
	}

	user, err := repo.CreateUser(ctx, req.Email, string(hash))
	if err != nil {
		return SignupResult{}, fmt.Errorf("signup: %w", err)
	}

	return SignupResult{
		UserID: user.ID,
		Email:  user.Email,
		Token:  uuid.NewString(),
	}, nil
}

func validateSignup(req SignupRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &SignupError{Field: strings.ToLower(fieldErrs[0].Field())}
		}
		return fmt.Errorf("%w: %v", ErrInvalidSignup, err)
	}

	// The struct tag counts runes; bcrypt's limit is in bytes.
	if len(req.Password) > maxPasswordBytes {
		return &SignupError{Field: "password"}
	}

	return nil
}
