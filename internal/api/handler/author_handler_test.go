package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

type stubAuthorService struct {
	createFn func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error)
	updateFn func(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context) ([]domain.Author, error)
}

func (s *stubAuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	return s.createFn(ctx, input)
}

func (s *stubAuthorService) Update(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubAuthorService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAuthorService) List(ctx context.Context) ([]domain.Author, error) {
	return s.listFn(ctx)
}

func TestAuthorHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		listFn: func(ctx context.Context) ([]domain.Author, error) {
			return []domain.Author{{ID: "author_1", Name: "Mary Shelley"}}, nil
		},
	}
	handler := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Mary Shelley" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthorHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		createFn: func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
			if input.Name != "Mary Shelley" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Author{ID: "author_1", Name: input.Name, Bio: input.Bio}, nil
		},
	}
	handler := NewAuthorHandler(stub)

	body := strings.NewReader(`{"name":"Mary Shelley","bio":"novelist"}`)
	req := httptest.NewRequest(http.MethodPost, "/authors", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthorHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		createFn: func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"bio":"no name"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthorHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		updateFn: func(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
			return nil, domain.ErrAuthorNotFound
		},
	}
	handler := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/authors/missing", strings.NewReader(`{"name":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthorHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "author_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/authors/author_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("author_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestAuthorHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthorService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrAuthorNotFound
		},
	}
	handler := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/authors/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
