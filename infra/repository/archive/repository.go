// Package archive provides the full-database dump and restore used by the
// admin export and import operations.
package archive

import (
	"context"

	"github.com/vehicleq/vehicleq/infra/repository/user"
	"github.com/vehicleq/vehicleq/infra/repository/vehicle"
	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
	"gorm.io/gorm"
)

type archiveRepository struct {
	db *gorm.DB
}

// New creates an archive repository bound to the given database handle.
func New(db *gorm.DB) repository.Archive {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Users(
	ctx context.Context,
) ([]*dto.UserExport, error) {
	var users []user.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.UserExport, 0, len(users))
	for i := range users {
		u := &users[i]
		result = append(result, &dto.UserExport{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			FullName: u.FullName,
			Phone:    u.Phone,
		})
	}
	return result, nil
}

func (r *archiveRepository) Vehicles(
	ctx context.Context,
) ([]*dto.VehicleExport, error) {
	var vehicles []vehicle.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.VehicleExport, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		result = append(result, &dto.VehicleExport{
			ID:        v.ID,
			Number:    v.Number,
			Owner:     v.Owner,
			Timestamp: v.Timestamp,
			UserID:    v.UserID,
			Image:     v.Image,
		})
	}
	return result, nil
}

// Import loads an export document back into the tables. Accounts whose
// username already exists are skipped silently; vehicles are always created
// as new records. The whole call runs in one transaction, so any failure
// rolls back every row written so far.
func (r *archiveRepository) Import(
	ctx context.Context,
	users []*dto.UserExport,
	vehicles []*dto.VehicleExport,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			var count int64
			if err := tx.Model(&user.User{}).
				Where("username = ?", u.Username).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			record := &user.User{
				Username: u.Username,
				Email:    u.Email,
				Password: u.Password,
				FullName: u.FullName,
				Phone:    u.Phone,
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}

		for _, v := range vehicles {
			record := &vehicle.Vehicle{
				Number:    v.Number,
				Owner:     v.Owner,
				Image:     v.Image,
				Timestamp: v.Timestamp,
				UserID:    v.UserID,
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
