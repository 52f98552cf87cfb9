package domain

import "errors"

// Domain errors shared across services; webapi maps them to HTTP statuses.
var (
	// ErrUserNotFound is returned when no account exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when a registration collides with an
	// existing username or email.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrVehicleNotFound is returned when no vehicle record exists for the
	// given id.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrImageNotFound is returned when the vehicle record is missing or
	// carries no image payload.
	ErrImageNotFound = errors.New("image not found")
	// ErrAdminUnauthorized is returned when credentials do not match the
	// configured admin account.
	ErrAdminUnauthorized = errors.New("invalid admin credentials")
)
