// Package user provides the gorm-backed account repository.
package user

import (
	"context"
	"errors"

	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given database handle.
func New(db *gorm.DB) repository.User {
	return &userRepository{db: db}
}

func (r *userRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) (*dto.UserRead, error) {
	user := &User{
		Username: create.Username,
		Email:    create.Email,
		Password: create.Password,
		FullName: create.FullName,
		Phone:    create.Phone,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(user), nil
}

func (r *userRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *userRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(
		ctx,
	).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *userRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateProfile(
	ctx context.Context,
	id int64,
	update *dto.ProfileUpdate,
) (*dto.UserRead, error) {
	// Only full_name and phone are mutable; username, email, and password
	// have no update path.
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"full_name": update.FullName,
			"phone":     update.Phone,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}
