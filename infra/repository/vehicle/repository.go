// Package vehicle provides the gorm-backed vehicle record repository.
package vehicle

import (
	"context"
	"errors"

	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
	"gorm.io/gorm"
)

// metadataColumns selects everything except the image payload. String
// timestamps in "2006-01-02 15:04:05" form sort lexicographically in
// chronological order, so ORDER BY timestamp DESC yields newest first.
const metadataColumns = "id, number, owner, timestamp, user_id, image IS NOT NULL AS has_image"

type vehicleRepository struct {
	db *gorm.DB
}

// New creates a vehicle repository bound to the given database handle.
func New(db *gorm.DB) repository.Vehicle {
	return &vehicleRepository{db: db}
}

type vehicleRow struct {
	ID        int64
	Number    string
	Owner     string
	Timestamp string
	UserID    int64
	HasImage  bool
}

func (r *vehicleRepository) Create(
	ctx context.Context,
	create *dto.VehicleCreate,
) (*dto.VehicleRead, error) {
	vehicle := &Vehicle{
		Number:    create.Number,
		Owner:     create.Owner,
		Image:     create.Image,
		Timestamp: create.Timestamp,
		UserID:    create.UserID,
	}
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return &dto.VehicleRead{
		ID:        vehicle.ID,
		Number:    vehicle.Number,
		Owner:     vehicle.Owner,
		Timestamp: vehicle.Timestamp,
		UserID:    vehicle.UserID,
		HasImage:  len(vehicle.Image) > 0,
	}, nil
}

func (r *vehicleRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.VehicleRead, error) {
	var row vehicleRow
	err := r.db.WithContext(ctx).Model(&Vehicle{}).
		Select(metadataColumns).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapRowToDTO(&row), nil
}

func (r *vehicleRepository) List(
	ctx context.Context,
) ([]*dto.VehicleRead, error) {
	var rows []vehicleRow
	err := r.db.WithContext(ctx).Model(&Vehicle{}).
		Select(metadataColumns).
		Order("timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRowsToDTOs(rows), nil
}

func (r *vehicleRepository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]*dto.VehicleRead, error) {
	var rows []vehicleRow
	err := r.db.WithContext(ctx).Model(&Vehicle{}).
		Select(metadataColumns).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRowsToDTOs(rows), nil
}

func (r *vehicleRepository) ListWithOwners(
	ctx context.Context,
) ([]*dto.VehicleWithOwner, error) {
	type ownerRow struct {
		vehicleRow
		Username *string
		Email    *string
	}
	var rows []ownerRow
	err := r.db.WithContext(ctx).Table("vehicles").
		Select("vehicles.id, vehicles.number, vehicles.owner, vehicles.timestamp, "+
			"vehicles.user_id, vehicles.image IS NOT NULL AS has_image, "+
			"users.username, users.email").
		Joins("LEFT JOIN users ON users.id = vehicles.user_id").
		Order("vehicles.timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.VehicleWithOwner, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		v := &dto.VehicleWithOwner{VehicleRead: *mapRowToDTO(&row.vehicleRow)}
		if row.Username != nil {
			v.Username = *row.Username
		}
		if row.Email != nil {
			v.Email = *row.Email
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *vehicleRepository) Image(
	ctx context.Context,
	id int64,
) ([]byte, error) {
	var vehicle Vehicle
	err := r.db.WithContext(ctx).
		Select("id, image").
		Where("id = ?", id).
		Take(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return vehicle.Image, nil
}

func (r *vehicleRepository) Delete(
	ctx context.Context,
	id int64,
) error {
	return r.db.WithContext(ctx).Delete(&Vehicle{}, "id = ?", id).Error
}

func mapRowToDTO(row *vehicleRow) *dto.VehicleRead {
	return &dto.VehicleRead{
		ID:        row.ID,
		Number:    row.Number,
		Owner:     row.Owner,
		Timestamp: row.Timestamp,
		UserID:    row.UserID,
		HasImage:  row.HasImage,
	}
}

func mapRowsToDTOs(rows []vehicleRow) []*dto.VehicleRead {
	result := make([]*dto.VehicleRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDTO(&rows[i]))
	}
	return result
}
