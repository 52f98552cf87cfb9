package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vehicleq/vehicleq/pkg/service/admin"
	"github.com/vehicleq/vehicleq/pkg/service/user"
	"github.com/vehicleq/vehicleq/pkg/service/vehicle"
)

// NewApp assembles the Fiber application: middleware, health probes, and the
// user, vehicle, and admin route groups.
func NewApp(
	db *gorm.DB,
	userSvc *user.Service,
	vehicleSvc *vehicle.Service,
	adminSvc *admin.Service,
) *fiber.App {
	app := fiber.New(fiber.Config{
		// Images arrive as multipart uploads; leave room above the
		// 4 MB Fiber default.
		BodyLimit: 32 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, err.Error())
		},
	})

	app.Use(recover.New())
	// Tag every request so log lines and error reports can be correlated.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	})
	// The browser front end is served from a different origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	HealthRoutes(app, db)
	UserRoutes(app, userSvc)
	VehicleRoutes(app, vehicleSvc)
	AdminRoutes(app, adminSvc)

	return app
}
