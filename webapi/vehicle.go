package webapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/vehicleq/vehicleq/pkg/service/vehicle"
)

// UploadInput carries the multipart form fields that accompany the image
// file part.
type UploadInput struct {
	UserID int64  `form:"user_id" validate:"required,min=1"`
	Number string `form:"number" validate:"required,max=20"`
	Owner  string `form:"owner" validate:"required,max=100"`
}

// uploadResponse is the identifier-bearing summary returned after a
// successful upload. The image bytes are never echoed back.
type uploadResponse struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Owner     string `json:"owner"`
	Timestamp string `json:"timestamp"`
}

func VehicleRoutes(app *fiber.App, vehicleSvc *vehicle.Service) {
	app.Post("/upload/", Upload(vehicleSvc))
	app.Get("/vehicles/", ListVehicles(vehicleSvc))
	app.Get("/vehicles/:user_id", ListVehiclesByUser(vehicleSvc))
	app.Get("/image/:id", VehicleImage(vehicleSvc))
	app.Delete("/vehicle/:id", DeleteVehicle(vehicleSvc))
}

// Upload accepts a multipart form with an "image" file part, runs the
// codec, and creates the vehicle record.
func Upload(vehicleSvc *vehicle.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[UploadInput](c)
		if err != nil {
			return nil // Error already written by helper
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Image file is required")
		}
		f, err := fileHeader.Open()
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Could not read image file")
		}
		defer f.Close() //nolint:errcheck
		data, err := io.ReadAll(f)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Could not read image file")
		}

		v, err := vehicleSvc.Upload(c.UserContext(), input.UserID,
			input.Number, input.Owner,
			fileHeader.Header.Get(fiber.HeaderContentType), data)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(uploadResponse{
			ID:        v.ID,
			Number:    v.Number,
			Owner:     v.Owner,
			Timestamp: v.Timestamp,
		})
	}
}

// ListVehicles returns every record, newest first.
func ListVehicles(vehicleSvc *vehicle.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := vehicleSvc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(records)
	}
}

// ListVehiclesByUser returns the records uploaded by one account, newest
// first. An unknown user id yields an empty array, not a 404.
func ListVehiclesByUser(vehicleSvc *vehicle.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "user_id")
		if !ok {
			return nil
		}
		records, err := vehicleSvc.ListForUser(c.UserContext(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(records)
	}
}

// VehicleImage streams the stored JPEG.
func VehicleImage(vehicleSvc *vehicle.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		data, err := vehicleSvc.Image(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		c.Set(fiber.HeaderContentType, "image/jpeg")
		return c.Send(data)
	}
}

// DeleteVehicle removes a record and reports whether an image payload went
// with it.
func DeleteVehicle(vehicleSvc *vehicle.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		imageRemoved, err := vehicleSvc.Delete(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":       "Vehicle deleted successfully",
			"image_removed": imageRemoved,
		})
	}
}
