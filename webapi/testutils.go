package webapi

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vehicleq/vehicleq/internal/fixtures"
	"github.com/vehicleq/vehicleq/pkg/config"
	"github.com/vehicleq/vehicleq/pkg/service/admin"
	"github.com/vehicleq/vehicleq/pkg/service/user"
	"github.com/vehicleq/vehicleq/pkg/service/vehicle"
)

// SetupTestApp builds the full Fiber app over mocked repositories and a
// sqlmock-backed gorm handle for the health probes.
func SetupTestApp(t *testing.T) (
	app *fiber.App,
	userRepo *fixtures.MockUserRepository,
	vehicleRepo *fixtures.MockVehicleRepository,
	archiveRepo *fixtures.MockArchiveRepository,
	dbMock sqlmock.Sqlmock,
) {
	t.Helper()

	mockDb, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Pings are asserted explicitly in the health probe tests.
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	userRepo = &fixtures.MockUserRepository{}
	vehicleRepo = &fixtures.MockVehicleRepository{}
	archiveRepo = &fixtures.MockArchiveRepository{}
	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		vehicleRepo.AssertExpectations(t)
		archiveRepo.AssertExpectations(t)
	})

	log := slog.Default()
	app = NewApp(db,
		user.New(userRepo, log),
		vehicle.New(vehicleRepo, log),
		admin.New(config.AdminConfig{Username: "admin", Password: "admin123"},
			vehicleRepo, archiveRepo, log),
	)
	return
}

// formRequest builds a form-encoded request the way the browser client
// submits credentials and profile fields.
func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}
