package webapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

func HealthRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", Root())
	app.Get("/health", Health())
	app.Get("/health/db", HealthDB(db))
}

// Root is the plain liveness banner.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Vehicle API is running!"})
	}
}

// Health reports process liveness without touching any dependency.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		})
	}
}

// HealthDB pings the database and reports connectivity.
func HealthDB(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status":    "healthy",
			"db":        "connected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		}

		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			status["status"] = "unhealthy"
			status["db"] = "disconnected"
			status["error"] = err.Error()
			return c.Status(fiber.StatusInternalServerError).JSON(status)
		}
		return c.JSON(status)
	}
}
