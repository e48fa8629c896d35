package domain

import "time"

// Account created through signup. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
