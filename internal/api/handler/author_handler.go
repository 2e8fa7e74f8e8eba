package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author CRUD.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /authors. Public: soft-deleted authors are excluded.
//
// @Summary      List active authors
// @Tags         authors
// @Produce      json
// @Success      200  {array}   domain.Author
// @Failure      500  {object}  errorResponse
// @Router       /authors [get]
func (h *AuthorHandler) List(c echo.Context) error {
	authors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authors)
}

// Create handles POST /authors.
//
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      authorRequest  true  "Author details"
// @Success      201   {object}  domain.Author
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /authors [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	author, err := h.service.Create(c.Request().Context(), ports.AuthorInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, author)
}

// Update handles PUT /authors/:id. The provided fields overwrite the row.
//
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Author id"
// @Param        body  body      authorRequest  true  "Author details"
// @Success      200   {object}  domain.Author
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /authors/{id} [put]
func (h *AuthorHandler) Update(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	author, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AuthorInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "author not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, author)
}

// Delete handles DELETE /authors/:id. The author is soft-deleted.
//
// @Summary      Delete an author
// @Tags         authors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Author id"
// @Success      200  {object}  deleteResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "author not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "author deleted successfully"})
}
