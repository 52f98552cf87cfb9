// Package repository defines the data access interfaces implemented by the
// gorm-backed repositories under infra/repository.
package repository

import (
	"context"

	"github.com/vehicleq/vehicleq/pkg/dto"
)

// User defines data access for account records. Lookups return (nil, nil)
// when no record matches; callers translate that into domain errors.
type User interface {
	Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error)
	Get(ctx context.Context, id int64) (*dto.UserRead, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, update *dto.ProfileUpdate) (*dto.UserRead, error)
}

// Vehicle defines data access for vehicle records. Listings exclude image
// payloads and are ordered newest first.
type Vehicle interface {
	Create(ctx context.Context, create *dto.VehicleCreate) (*dto.VehicleRead, error)
	Get(ctx context.Context, id int64) (*dto.VehicleRead, error)
	List(ctx context.Context) ([]*dto.VehicleRead, error)
	ListByUser(ctx context.Context, userID int64) ([]*dto.VehicleRead, error)
	ListWithOwners(ctx context.Context) ([]*dto.VehicleWithOwner, error)
	Image(ctx context.Context, id int64) ([]byte, error)
	Delete(ctx context.Context, id int64) error
}

// Archive defines the full-database dump and restore used by the admin
// export and import operations. Import runs in a single transaction: any
// failure rolls back every row written by that call.
type Archive interface {
	Users(ctx context.Context) ([]*dto.UserExport, error)
	Vehicles(ctx context.Context) ([]*dto.VehicleExport, error)
	Import(ctx context.Context, users []*dto.UserExport, vehicles []*dto.VehicleExport) error
}
