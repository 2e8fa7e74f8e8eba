package ports

import (
	"context"

	"github.com/inkpress/content-api/internal/core/domain"
)

// UserRepository defines the persistence surface for user accounts. All reads
// exclude soft-deleted rows.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
