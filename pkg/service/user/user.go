// Package user provides business logic for account registration, login, and
// profile management.
package user

import (
	"context"
	"log/slog"

	"github.com/vehicleq/vehicleq/pkg/domain"
	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
)

// Service provides account operations backed by the user repository.
type Service struct {
	repo   repository.User
	logger *slog.Logger
}

// New creates a Service with a user repository and logger.
func New(repo repository.User, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Register creates a new account. It fails with domain.ErrDuplicateUser when
// the username or email is already taken (exact, case-sensitive match). Two
// concurrent registrations with the same username can both pass this check;
// the unique index settles the race at commit time.
func (s *Service) Register(
	ctx context.Context,
	create *dto.UserCreate,
) (*dto.UserRead, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, create.Username, create.Email)
	if err != nil {
		s.logger.Error("registration existence check failed", "error", err)
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}

	u, err := s.repo.Create(ctx, create)
	if err != nil {
		s.logger.Error("user create failed", "username", create.Username, "error", err)
		return nil, err
	}
	s.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return u, nil
}

// Login returns the full account record when the username exists and the
// password matches exactly; any other combination yields
// domain.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (*dto.UserRead, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("login lookup failed", "username", username, "error", err)
		return nil, err
	}
	if u == nil || u.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Get retrieves an account by id.
func (s *Service) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Error("user lookup failed", "id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile overwrites full_name and phone on an existing account and
// returns the updated record. Username, email, and password are immutable
// via this path.
func (s *Service) UpdateProfile(
	ctx context.Context,
	id int64,
	update *dto.ProfileUpdate,
) (*dto.UserRead, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Error("profile lookup failed", "id", id, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	u, err := s.repo.UpdateProfile(ctx, id, update)
	if err != nil {
		s.logger.Error("profile update failed", "id", id, "error", err)
		return nil, err
	}
	return u, nil
}
