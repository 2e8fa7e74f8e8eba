package ports

import (
	"context"

	"github.com/inkpress/content-api/internal/core/domain"
)

// PostRepository persists posts. ListWithAuthor returns active posts with
// their active author nested; posts whose author was soft-deleted come back
// with a nil author.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	SoftDelete(ctx context.Context, id string) error
	ListWithAuthor(ctx context.Context) ([]domain.Post, error)
}
