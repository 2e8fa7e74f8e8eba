package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user does not exist")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("incorrect password")
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account. PasswordHash never leaves the process:
// the json tag drops it from every response body.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the account has not been soft-deleted.
func (u *User) Active() bool {
	return u.DeletedAt == nil
}
