package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/pkg/logger"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("id-%d", len(r.users)+1)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newTestAuthService(repo *stubUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", "gamestore", 15*time.Minute)
	log := logger.Init(logger.Options{Level: "error"})
	return NewAuthService(repo, tokens, log), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass", domain.RoleUser); !errors.Is(err, domain.ErrInvalidRegistration) {
		t.Fatalf("expected ErrInvalidRegistration for empty name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidRegistration) {
		t.Fatalf("expected ErrInvalidRegistration for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass", domain.RoleUser)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Robert", "bob@example.com", "pass2", domain.RoleAdmin); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// First record unaffected by the rejected duplicate.
	stored, err := repo.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Name != first.Name || stored.Role != first.Role {
		t.Fatalf("first record was modified: %+v", stored)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	svc, tokens := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if subject != "carol@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass", domain.RoleUser)
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(newStubUserRepo())

	// Unknown users get the same error as wrong passwords.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
