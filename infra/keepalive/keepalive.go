// Package keepalive implements the periodic outbound ping that keeps a
// hosting platform from idling the process.
package keepalive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vehicleq/vehicleq/pkg/config"
)

// Pinger issues a GET to a fixed URL on a fixed interval. It holds no
// resource the request handlers need and never escalates failures; a failed
// ping is logged and the loop continues.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *slog.Logger
}

// New creates a Pinger from config. The pinger is inert when no URL is
// configured.
func New(cfg config.KeepAliveConfig, logger *slog.Logger) *Pinger {
	return &Pinger{
		url:      cfg.Url,
		interval: cfg.Interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, pinging once per interval. Callers
// start it in its own goroutine at process init and cancel the context at
// shutdown.
func (p *Pinger) Run(ctx context.Context) {
	if p.url == "" {
		p.logger.Info("keep-alive disabled, no URL configured")
		return
	}

	p.logger.Info("keep-alive started", "url", p.url, "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("keep-alive stopped")
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Warn("keep-alive request build failed", "error", err)
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keep-alive ping failed", "error", err)
		return
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	p.logger.Debug("keep-alive ping ok", "status", resp.StatusCode)
}
