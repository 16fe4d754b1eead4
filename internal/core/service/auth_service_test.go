package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/shop-api/internal/core/domain"
)

func newAuthSvc(repo *stubUserRepo, rev *stubRevocations) *AuthService {
	if rev == nil {
		return NewAuthService(repo, newTokens(), nil, discardLogger)
	}
	return NewAuthService(repo, newTokens(), rev, discardLogger)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	res, err := svc.Register(context.Background(), " Alice ", "Alice@Example.com ", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a session token")
	}
	if res.User.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", res.User.Email)
	}
	if res.User.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", res.User.Name)
	}
	if res.User.Role != domain.RoleCustomer {
		t.Fatalf("expected role %s, got %s", domain.RoleCustomer, res.User.Role)
	}
	if res.User.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := newTokens().Verify(res.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != res.User.ID || claims.Role != domain.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), "bobby", "BOB@example.com", "pass2")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_RaceLostOnUniqueIndex(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrDuplicateEmail
	svc := newAuthSvc(repo, nil)

	_, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "Carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.User.Name != "carol" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
}

func TestAuthService_Login_NeverRevealsWhichPartFailed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, nil)
	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass")

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost@example.com", "goodpass")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	repo := newStubUserRepo()
	rev := newStubRevocations()
	svc := newAuthSvc(repo, rev)

	res, err := svc.Register(context.Background(), "erin", "erin@example.com", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	claims, _ := newTokens().Verify(res.Token)

	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := rev.revoked[claims.TokenID]
	if !ok {
		t.Fatalf("expected token %s to be revoked", claims.TokenID)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_IgnoresGarbage(t *testing.T) {
	rev := newStubRevocations()
	svc := newAuthSvc(newStubUserRepo(), rev)

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("expected nil for empty token, got %v", err)
	}
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("expected nil for malformed token, got %v", err)
	}
	if len(rev.revoked) != 0 {
		t.Fatalf("expected nothing revoked, got %v", rev.revoked)
	}
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	rev := newStubRevocations()
	rev.revokeErr = errBoom
	svc := newAuthSvc(repo, rev)

	res, _ := svc.Register(context.Background(), "finn", "finn@example.com", "pw")
	if err := svc.Logout(context.Background(), res.Token); !errors.Is(err, errBoom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
