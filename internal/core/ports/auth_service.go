package ports

import (
	"context"

	"github.com/inkpress/content-api/internal/core/domain"
)

// AuthService covers account registration, credential verification and token
// issuance. Authenticate returns the user on success; rejection reasons are
// the domain sentinels ErrUserNotFound and ErrInvalidCredentials.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(user *domain.User) (string, error)
}
