package ports

import (
	"context"
	"time"

	"github.com/inkpress/content-api/internal/core/domain"
)

// AuthorInput carries the mutable fields of an author. Update overwrites all
// of them on the target row.
type AuthorInput struct {
	Name      string
	Bio       string
	Birthdate time.Time
}

type AuthorService interface {
	Create(ctx context.Context, input AuthorInput) (*domain.Author, error)
	Update(ctx context.Context, id string, input AuthorInput) (*domain.Author, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Author, error)
}
