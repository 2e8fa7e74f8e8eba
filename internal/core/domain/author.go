package domain

import (
	"errors"
	"time"
)

var ErrAuthorNotFound = errors.New("author not found")

// Author is a content author. An author owns zero or more posts through the
// post's author_id reference.
type Author struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	Birthdate time.Time  `json:"birthdate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
