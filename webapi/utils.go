package webapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vehicleq/vehicleq/pkg/domain"
	"github.com/vehicleq/vehicleq/pkg/imaging"
)

// ErrorDetail is the body of every failure response: a single
// human-readable string under the "detail" key.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponseJSON writes the flat error body with the given status.
func ErrorResponseJSON(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorDetail{Detail: detail})
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrVehicleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrImageNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAdminUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicateUser):
		return fiber.StatusBadRequest
	case errors.Is(err, imaging.ErrNotAnImage):
		return fiber.StatusBadRequest
	case errors.Is(err, imaging.ErrDecode):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError writes the response for an error returned by a service call,
// using the error's own message as the detail.
func serviceError(c *fiber.Ctx, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), err.Error())
}

// parseID reads a positive integer path parameter. On failure it writes a
// 400 response and returns ok=false.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		_ = ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return int64(id), true
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns a pointer to the struct (populated), or
// writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body")
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, err.Error())
		return nil, err
	}
	return &input, nil
}
