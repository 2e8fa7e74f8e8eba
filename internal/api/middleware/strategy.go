package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/content-api/internal/core/auth"
	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

// Strategy resolves a request to a verified user or rejects it. Strategies
// are selected per route at configuration time; see Authenticate.
type Strategy interface {
	// Name identifies the strategy in logs and metrics.
	Name() string
	// Authenticate returns the verified principal or an error describing the
	// rejection. Rejection errors never reach the client verbatim.
	Authenticate(c echo.Context) (*domain.User, error)
}

// LocalStrategy validates email+password credentials from the request body.
type LocalStrategy struct {
	authService ports.AuthService
}

func NewLocalStrategy(authService ports.AuthService) *LocalStrategy {
	return &LocalStrategy{authService: authService}
}

func (s *LocalStrategy) Name() string { return "local" }

type localCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *LocalStrategy) Authenticate(c echo.Context) (*domain.User, error) {
	var creds localCredentials
	if err := c.Bind(&creds); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.authService.Authenticate(c.Request().Context(), creds.Email, creds.Password)
}

// BearerStrategy validates a bearer token and re-resolves the account. The
// lookup is deliberate: a soft-deleted user must be rejected even when the
// token itself still verifies.
type BearerStrategy struct {
	tokens *auth.TokenIssuer
	users  ports.UserRepository
}

func NewBearerStrategy(tokens *auth.TokenIssuer, users ports.UserRepository) *BearerStrategy {
	return &BearerStrategy{tokens: tokens, users: users}
}

func (s *BearerStrategy) Name() string { return "bearer" }

func (s *BearerStrategy) Authenticate(c echo.Context) (*domain.User, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, domain.ErrInvalidToken
	}

	// Scheme comparison is case-insensitive per RFC 7235.
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}
