package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/inkpress/content-api/internal/core/auth"
	"github.com/inkpress/content-api/internal/core/domain"
	"github.com/inkpress/content-api/internal/core/ports"
)

// AuthService implements signup, credential verification and token issuance.
type AuthService struct {
	repo   ports.UserRepository
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Signup hashes the password and creates the account. A duplicate email
// surfaces as domain.ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Authenticate verifies email+password against the stored hash. The two
// rejection reasons stay distinguishable here (and in logs); the transport
// layer renders both as a uniform 401.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("login rejected: user does not exist")
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Info().Str("email", email).Msg("login rejected: incorrect password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a bearer token for an authenticated user.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	return s.tokens.Issue(user)
}
