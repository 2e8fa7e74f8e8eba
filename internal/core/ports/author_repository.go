package ports

import (
	"context"

	"github.com/inkpress/content-api/internal/core/domain"
)

// AuthorRepository persists authors. Reads exclude soft-deleted rows;
// SoftDelete marks the row deleted without removing it.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) (*domain.Author, error)
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Author, error)
}
