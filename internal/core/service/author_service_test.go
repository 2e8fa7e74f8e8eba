package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

type stubAuthorRepo struct {
	authors map[string]*domain.Author
	nextID  int
}

func newStubAuthorRepo() *stubAuthorRepo {
	return &stubAuthorRepo{authors: make(map[string]*domain.Author)}
}

func (r *stubAuthorRepo) Create(_ context.Context, author *domain.Author) (*domain.Author, error) {
	r.nextID++
	clone := *author
	clone.ID = "author_" + strconv.Itoa(r.nextID)
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	stored := clone
	r.authors[clone.ID] = &stored
	return &clone, nil
}

func (r *stubAuthorRepo) FindByID(_ context.Context, id string) (*domain.Author, error) {
	a, ok := r.authors[id]
	if !ok || a.DeletedAt != nil {
		return nil, domain.ErrAuthorNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAuthorRepo) Update(_ context.Context, author *domain.Author) (*domain.Author, error) {
	stored, ok := r.authors[author.ID]
	if !ok || stored.DeletedAt != nil {
		return nil, domain.ErrAuthorNotFound
	}
	clone := *author
	clone.UpdatedAt = time.Now().UTC()
	*stored = clone
	return &clone, nil
}

func (r *stubAuthorRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := r.authors[id]
	if !ok || a.DeletedAt != nil {
		return domain.ErrAuthorNotFound
	}
	now := time.Now().UTC()
	a.DeletedAt = &now
	return nil
}

func (r *stubAuthorRepo) List(_ context.Context) ([]domain.Author, error) {
	out := []domain.Author{}
	for _, a := range r.authors {
		if a.DeletedAt == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func TestAuthorService_CreateAndList(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.AuthorInput{Name: "Mary Shelley", Bio: "novelist"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	authors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(authors) != 1 || authors[0].Name != "Mary Shelley" {
		t.Fatalf("unexpected listing: %+v", authors)
	}
}

func TestAuthorService_Update_OverwritesFields(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.AuthorInput{Name: "Old Name", Bio: "old bio"})

	updated, err := svc.Update(context.Background(), created.ID, ports.AuthorInput{Name: "New Name"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("expected name overwrite, got %s", updated.Name)
	}
	if updated.Bio != "" {
		t.Fatalf("expected bio overwritten with empty value, got %q", updated.Bio)
	}
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.AuthorInput{Name: "x"}); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestAuthorService_Delete_ExcludesFromListAndUpdate(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.AuthorInput{Name: "Gone Soon"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	authors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(authors) != 0 {
		t.Fatalf("expected soft-deleted author excluded, got %+v", authors)
	}

	if _, err := svc.Update(context.Background(), created.ID, ports.AuthorInput{Name: "x"}); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound after delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound on double delete, got %v", err)
	}
}
