package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/service/admin"
)

// AdminLoginInput carries the form-encoded admin credential pair.
type AdminLoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Routes past the login gate perform no per-request credential check; trust
// is established out of band by the caller. See the service doc.
func AdminRoutes(app *fiber.App, adminSvc *admin.Service) {
	app.Post("/admin/login/", AdminLogin(adminSvc))
	app.Get("/admin/vehicles/", AdminVehicles(adminSvc))
	app.Delete("/admin/vehicle/:id", AdminDeleteVehicle(adminSvc))
	app.Get("/admin/export/", AdminExport(adminSvc))
	app.Post("/admin/import/", AdminImport(adminSvc))
}

// AdminLogin checks the static credentials. No token or session is issued.
func AdminLogin(adminSvc *admin.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[AdminLoginInput](c)
		if err != nil {
			return nil // Error already written by helper
		}
		if err := adminSvc.Login(input.Username, input.Password); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Admin login successful",
		})
	}
}

// AdminVehicles lists every record joined with its uploader's identity.
func AdminVehicles(adminSvc *admin.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := adminSvc.ListWithOwners(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rows)
	}
}

// AdminDeleteVehicle removes any record, regardless of uploader.
func AdminDeleteVehicle(adminSvc *admin.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		if err := adminSvc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
	}
}

// AdminExport dumps every account and vehicle record as one JSON document.
// Image payloads travel base64-encoded inside it.
func AdminExport(adminSvc *admin.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := adminSvc.Export(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(doc)
	}
}

// AdminImport loads an export document. Any storage error rolls back the
// whole batch and surfaces as a 400 with the underlying message.
func AdminImport(adminSvc *admin.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc dto.ExportDocument
		if err := c.BodyParser(&doc); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid import document")
		}
		if err := adminSvc.Import(c.UserContext(), &doc); err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"message": "Import completed successfully"})
	}
}
