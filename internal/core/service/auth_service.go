package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/shop-api/internal/api/metrics"
	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	repo        ports.UserRepository
	tokens      ports.TokenManager
	revocations ports.RevocationStore
	log         zerolog.Logger
	now         func() time.Time
}

// NewAuthService wires the auth use cases. revocations may be nil, in which
// case logout only clears the cookie.
func NewAuthService(repo ports.UserRepository, tokens ports.TokenManager, revocations ports.RevocationStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:        repo,
		tokens:      tokens,
		revocations: revocations,
		log:         log,
		now:         time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
		}
		return nil, err
	}

	token, _, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login never distinguishes an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return &ports.AuthResult{User: user, Token: token}, nil
}

// Logout revokes the token until its natural expiry. Tokens that are empty,
// malformed or already expired need no revocation and are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" || s.revocations == nil {
		return nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID, ttl); err != nil {
		s.log.Warn().Err(err).Str("user_id", claims.UserID).Msg("failed to revoke session token")
		return err
	}

	s.log.Info().Str("user_id", claims.UserID).Msg("user logged out")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
