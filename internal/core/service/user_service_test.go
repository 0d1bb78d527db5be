package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

type stubUserRepo struct {
	users     map[string]*domain.User
	createErr error
	creates   int
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
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Register(context.Background(), "raider_01", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected persisted user, got %+v", user)
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %s, got %s", domain.RoleUser, user.Role)
	}
	if user.Enabled {
		t.Fatalf("expected new account to be disabled")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), "raider_01", "password123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), "raider_01", "another-password")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	var rv *domain.RuleViolationError
	if !errors.As(err, &rv) {
		t.Fatalf("expected rule violation, got %T", err)
	}
	if rv.Message != "이미 존재하는 사용자입니다. 사용자 이름: raider_01" {
		t.Fatalf("unexpected message: %q", rv.Message)
	}
	if repo.creates != 1 {
		t.Fatalf("expected the duplicate to be rejected before Create, got %d creates", repo.creates)
	}
}

func TestUserService_Register_CaseSensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Register(context.Background(), "Raider01", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "raider01", "password123"); err != nil {
		t.Fatalf("expected usernames differing in case to be distinct, got %v", err)
	}
}

func TestUserService_Register_RaceOnCreate(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrUserExists
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "raider_01", "password123")
	var rv *domain.RuleViolationError
	if !errors.As(err, &rv) || !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected username-taken violation, got %v", err)
	}
}

func TestUserService_Register_RepoFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("connection reset")
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), "raider_01", "password123")
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
	var rv *domain.RuleViolationError
	if errors.As(err, &rv) {
		t.Fatalf("infrastructure failure must not be a rule violation")
	}
}

func TestUserService_ExistsByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	exists, err := svc.ExistsByUsername(context.Background(), "raider_01")
	if err != nil || exists {
		t.Fatalf("expected absent user, got %v %v", exists, err)
	}

	_, _ = svc.Register(context.Background(), "raider_01", "password123")
	exists, err = svc.ExistsByUsername(context.Background(), "raider_01")
	if err != nil || !exists {
		t.Fatalf("expected existing user, got %v %v", exists, err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", "adminpass"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if _, err := svc.Register(context.Background(), "pending_user", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "admin", "adminpass")
	if err != nil {
		t.Fatalf("expected admin login to succeed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, user.Role)
	}

	cases := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"wrong password", "admin", "nope", domain.ErrInvalidCredentials},
		{"unknown user", "ghost", "whatever", domain.ErrInvalidCredentials},
		{"empty password", "admin", "", domain.ErrInvalidCredentials},
		{"disabled account", "pending_user", "password123", domain.ErrAccountDisabled},
		{"disabled account wrong password", "pending_user", "bad", domain.ErrAccountDisabled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authenticate(context.Background(), tc.username, tc.password); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUserService_EnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", "first"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "admin", "second"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected a single create, got %d", repo.creates)
	}

	stored := repo.users["admin"]
	if !stored.Enabled || stored.Role != domain.RoleAdmin {
		t.Fatalf("unexpected admin account: %+v", stored)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("first")) != nil {
		t.Fatalf("existing admin password must not be replaced")
	}
}

func TestNewUserService_DefaultsCost(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), 0, zerolog.Nop())
	if svc.bcryptCost != defaultBcryptCost {
		t.Fatalf("expected default cost %d, got %d", defaultBcryptCost, svc.bcryptCost)
	}
}

func TestUserService_Register_PasswordTooLongForBcrypt(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	// 30 Hangul syllables are 90 bytes in UTF-8.
	_, err := svc.Register(context.Background(), "raider_01", strings.Repeat("비", 30))

	var rv *domain.RuleViolationError
	if !errors.As(err, &rv) || !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected password length violation, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no create, got %d", repo.creates)
	}
}

func TestUserService_EnsureAdmin_LostRaceIsNotSeeded(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrUserExists

	var buf bytes.Buffer
	svc := NewUserService(repo, bcrypt.MinCost, zerolog.New(&buf))

	if err := svc.EnsureAdmin(context.Background(), "admin", "first-pass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one create attempt, got %d", repo.creates)
	}
	if strings.Contains(buf.String(), "admin account seeded") {
		t.Fatalf("unexpected seeded log: %s", buf.String())
	}
}
