package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) Create(ctx context.Context, input ports.PostInput) (*domain.Post, error) {
	post := &domain.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	return created, nil
}

// Update overwrites title, content and author reference on the target post.
func (s *PostService) Update(ctx context.Context, id string, input ports.PostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.AuthorID = input.AuthorID

	return s.repo.Update(ctx, post)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("post soft-deleted")
	return nil
}

// List returns active posts with their author nested when the author is
// itself still active.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListWithAuthor(ctx)
}
