package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
	"github.com/ljhwogur/raid-hub/internal/pkg/metrics"
)

const defaultBcryptCost = 12

// UserService implements registration, login checks and admin seeding.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

// NewUserService returns a UserService hashing with the given bcrypt cost.
// An out-of-range cost falls back to 12.
func NewUserService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// Register creates a disabled USER account. Callers cannot choose the role or
// the enabled flag.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		s.log.Warn().Str("username", username).Msg("registration rejected: username taken")
		return nil, domain.UsernameTakenError(username)
	}

	hash, err := s.hash(password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enabled:      false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return nil, domain.UsernameTakenError(username)
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}

func (s *UserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

// Authenticate verifies a login. A disabled account is reported before the
// password is checked.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !user.Enabled {
		return nil, domain.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates an enabled ADMIN account unless the username is already
// taken. Existing accounts are never modified.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if exists {
		s.log.Debug().Str("username", username).Msg("admin account already present")
		return nil
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		s.log.Debug().Str("username", username).Msg("admin account created concurrently")
		return nil
	case err != nil:
		return fmt.Errorf("ensure admin: %w", err)
	}

	s.log.Info().Str("username", username).Msg("admin account seeded")
	return nil
}

// hash reports a password bcrypt cannot accept as a rule violation.
func (s *UserService) hash(password string) ([]byte, error) {
	if len(password) > domain.MaxPasswordBytes {
		return nil, domain.PasswordTooLongError()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.PasswordTooLongError()
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
