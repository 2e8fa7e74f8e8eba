package ports

import (
	"context"

	"github.com/inkpress/content-api/internal/core/domain"
)

// PostInput carries the mutable fields of a post. AuthorID may be empty for
// unattributed posts.
type PostInput struct {
	Title    string
	Content  string
	AuthorID string
}

type PostService interface {
	Create(ctx context.Context, input PostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, input PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Post, error)
}
