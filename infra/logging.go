package infra

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger builds the process-wide slog.Logger backed by a charmbracelet
// text handler. Development gets debug level with caller reporting;
// everything else logs info and above.
func SetupLogger(env string) *slog.Logger {
	level := log.InfoLevel
	reportCaller := false
	if env == "development" {
		level = log.DebugLevel
		reportCaller = true
	}

	handler := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    reportCaller,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          "vehicleq",
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
