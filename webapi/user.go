package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/service/user"
)

// RegisterInput carries the form-encoded registration fields. Every field is
// required; length caps mirror the column sizes.
type RegisterInput struct {
	Username string `form:"username" validate:"required,max=50"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required"`
	FullName string `form:"full_name" validate:"required,max=100"`
	Phone    string `form:"phone" validate:"required,max=20"`
}

// LoginInput carries the form-encoded credential pair.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ProfileInput carries the two mutable profile fields.
type ProfileInput struct {
	FullName string `form:"full_name" validate:"required,max=100"`
	Phone    string `form:"phone" validate:"required,max=20"`
}

func UserRoutes(app *fiber.App, userSvc *user.Service) {
	app.Post("/register/", Register(userSvc))
	app.Post("/login/", Login(userSvc))
	app.Get("/profile/:id", GetProfile(userSvc))
	app.Put("/profile/:id", UpdateProfile(userSvc))
}

// Register creates an account. The response echoes the stored record,
// password included.
func Register(userSvc *user.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[RegisterInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		u, err := userSvc.Register(c.UserContext(), &dto.UserCreate{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			FullName: input.FullName,
			Phone:    input.Phone,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(u)
	}
}

// Login verifies the credentials and returns the full account record.
func Login(userSvc *user.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[LoginInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		u, err := userSvc.Login(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(u)
	}
}

// GetProfile returns the account record for the given id.
func GetProfile(userSvc *user.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		u, err := userSvc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateProfile overwrites full_name and phone; username, email, and
// password stay untouched.
func UpdateProfile(userSvc *user.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		input, err := BindAndValidate[ProfileInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		u, err := userSvc.UpdateProfile(c.UserContext(), id, &dto.ProfileUpdate{
			FullName: input.FullName,
			Phone:    input.Phone,
		})
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(u)
	}
}
