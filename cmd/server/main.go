package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/vehicleq/vehicleq/infra"
	"github.com/vehicleq/vehicleq/infra/keepalive"
	archiverepo "github.com/vehicleq/vehicleq/infra/repository/archive"
	userrepo "github.com/vehicleq/vehicleq/infra/repository/user"
	vehiclerepo "github.com/vehicleq/vehicleq/infra/repository/vehicle"
	"github.com/vehicleq/vehicleq/pkg/config"
	adminsvc "github.com/vehicleq/vehicleq/pkg/service/admin"
	usersvc "github.com/vehicleq/vehicleq/pkg/service/user"
	vehiclesvc "github.com/vehicleq/vehicleq/pkg/service/vehicle"
	"github.com/vehicleq/vehicleq/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := infra.SetupLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load(logger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&userrepo.User{}, &vehiclerepo.Vehicle{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	users := userrepo.New(db)
	vehicles := vehiclerepo.New(db)
	archive := archiverepo.New(db)

	app := webapi.NewApp(db,
		usersvc.New(users, logger),
		vehiclesvc.New(vehicles, logger),
		adminsvc.New(cfg.Admin, vehicles, archive, logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go keepalive.New(cfg.KeepAlive, logger).Run(ctx)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
