// Package admin provides the administrator operations: static-credential
// login, global listing and deletion, and full-database export/import.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/vehicleq/vehicleq/pkg/config"
	"github.com/vehicleq/vehicleq/pkg/domain"
	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
)

// Service provides admin operations. Trust is established only by Login;
// the remaining operations perform no per-call credential check and rely on
// the deployment gating access to the admin routes.
type Service struct {
	creds    config.AdminConfig
	vehicles repository.Vehicle
	archive  repository.Archive
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Service with the configured admin credentials and
// repositories.
func New(
	creds config.AdminConfig,
	vehicles repository.Vehicle,
	archive repository.Archive,
	logger *slog.Logger,
) *Service {
	return &Service{
		creds:    creds,
		vehicles: vehicles,
		archive:  archive,
		logger:   logger,
		now:      time.Now,
	}
}

// Login verifies the submitted credentials against the configured admin
// account. No session or token is issued.
func (s *Service) Login(username, password string) error {
	if username != s.creds.Username || password != s.creds.Password {
		s.logger.Warn("admin login rejected", "username", username)
		return domain.ErrAdminUnauthorized
	}
	s.logger.Info("admin login accepted")
	return nil
}

// ListWithOwners joins every vehicle record with its uploader's identity.
// Records whose user_id does not resolve surface "Unknown" for username and
// email instead of failing.
func (s *Service) ListWithOwners(
	ctx context.Context,
) ([]*dto.VehicleWithOwner, error) {
	rows, err := s.vehicles.ListWithOwners(ctx)
	if err != nil {
		s.logger.Error("admin vehicle listing failed", "error", err)
		return nil, err
	}
	for _, row := range rows {
		if row.Username == "" {
			row.Username = "Unknown"
		}
		if row.Email == "" {
			row.Email = "Unknown"
		}
	}
	return rows, nil
}

// Delete removes any vehicle record, with no ownership restriction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	v, err := s.vehicles.Get(ctx, id)
	if err != nil {
		s.logger.Error("admin vehicle lookup failed", "id", id, "error", err)
		return err
	}
	if v == nil {
		return domain.ErrVehicleNotFound
	}

	if err := s.vehicles.Delete(ctx, id); err != nil {
		s.logger.Error("admin vehicle delete failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("vehicle deleted by admin", "id", id)
	return nil
}

// Export produces the portable dump of every account (raw passwords
// included) and every vehicle record with its image payload. The document
// grows linearly with stored data; nothing is paginated or streamed.
func (s *Service) Export(ctx context.Context) (*dto.ExportDocument, error) {
	users, err := s.archive.Users(ctx)
	if err != nil {
		s.logger.Error("export users failed", "error", err)
		return nil, err
	}
	vehicles, err := s.archive.Vehicles(ctx)
	if err != nil {
		s.logger.Error("export vehicles failed", "error", err)
		return nil, err
	}

	s.logger.Info("export produced", "users", len(users), "vehicles", len(vehicles))
	return &dto.ExportDocument{
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Users:      users,
		Vehicles:   vehicles,
	}, nil
}

// Import loads an export document back into the store. Accounts are skipped
// when the username already exists; vehicles are always created. Any storage
// error rolls back the whole call and is returned with its underlying
// message intact.
func (s *Service) Import(ctx context.Context, doc *dto.ExportDocument) error {
	if err := s.archive.Import(ctx, doc.Users, doc.Vehicles); err != nil {
		s.logger.Error("import rolled back", "error", err)
		return err
	}
	s.logger.Info("import completed",
		"users", len(doc.Users), "vehicles", len(doc.Vehicles))
	return nil
}
