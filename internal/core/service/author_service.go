package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

type AuthorService struct {
	repo   ports.AuthorRepository
	logger zerolog.Logger
}

func NewAuthorService(repo ports.AuthorRepository, logger zerolog.Logger) *AuthorService {
	return &AuthorService{repo: repo, logger: logger}
}

func (s *AuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	author := &domain.Author{
		Name:      input.Name,
		Bio:       input.Bio,
		Birthdate: input.Birthdate,
	}

	created, err := s.repo.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("author_id", created.ID).Msg("author created")
	return created, nil
}

// Update overwrites the full mutable field set of the author. Absent rows
// (including soft-deleted ones) surface as domain.ErrAuthorNotFound.
func (s *AuthorService) Update(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author.Name = input.Name
	author.Bio = input.Bio
	author.Birthdate = input.Birthdate

	return s.repo.Update(ctx, author)
}

// Delete soft-deletes the author; its row stays in the store but disappears
// from all default reads.
func (s *AuthorService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("author_id", id).Msg("author soft-deleted")
	return nil
}

func (s *AuthorService) List(ctx context.Context) ([]domain.Author, error) {
	return s.repo.List(ctx)
}
