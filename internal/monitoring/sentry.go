package monitoring

import (
	"fmt"
	"time"

	"fitness-club/config"

	"github.com/getsentry/sentry-go"
)

// InitSentry starts error reporting. It returns false without error when no DSN is configured.
func InitSentry(cfg config.SentryConfig, environment string) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		Release:          cfg.Release,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return false, fmt.Errorf("sentry initialization failed: %w", err)
	}
	return true, nil
}

// FlushSentry sends buffered events before the program exits.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
