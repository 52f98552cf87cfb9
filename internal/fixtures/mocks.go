// Package fixtures provides testify mocks for the repository interfaces.
package fixtures

import (
	"context"

	"github.com/vehicleq/vehicleq/pkg/dto"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.User.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) (*dto.UserRead, error) {
	args := m.Called(ctx, create)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(
	ctx context.Context,
	id int64,
	update *dto.ProfileUpdate,
) (*dto.UserRead, error) {
	args := m.Called(ctx, id, update)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

// MockVehicleRepository is a testify mock of repository.Vehicle.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(
	ctx context.Context,
	create *dto.VehicleCreate,
) (*dto.VehicleRead, error) {
	args := m.Called(ctx, create)
	v, _ := args.Get(0).(*dto.VehicleRead)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.VehicleRead, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*dto.VehicleRead)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) List(
	ctx context.Context,
) ([]*dto.VehicleRead, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*dto.VehicleRead)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]*dto.VehicleRead, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]*dto.VehicleRead)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) ListWithOwners(
	ctx context.Context,
) ([]*dto.VehicleWithOwner, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*dto.VehicleWithOwner)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) Image(
	ctx context.Context,
	id int64,
) ([]byte, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArchiveRepository is a testify mock of repository.Archive.
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Users(
	ctx context.Context,
) ([]*dto.UserExport, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*dto.UserExport)
	return u, args.Error(1)
}

func (m *MockArchiveRepository) Vehicles(
	ctx context.Context,
) ([]*dto.VehicleExport, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*dto.VehicleExport)
	return v, args.Error(1)
}

func (m *MockArchiveRepository) Import(
	ctx context.Context,
	users []*dto.UserExport,
	vehicles []*dto.VehicleExport,
) error {
	args := m.Called(ctx, users, vehicles)
	return args.Error(0)
}
