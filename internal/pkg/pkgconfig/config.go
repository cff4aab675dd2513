package pkgconfig

import "time"

// Config is a read-only view over the application configuration.
type Config interface {
	GetInt(key string) int64
	GetFloat(key string) float64
	GetString(key string) string
	GetDuration(key string) time.Duration
	Close() error
}

// Defaults applied before any file or environment value.
//
//nolint:gochecknoglobals // read-only table
var Defaults = map[string]any{
	"server.address.http":       "0.0.0.0:3000",
	"database.url":              "",
	"database.max_conns":        10,
	"database.acquire_timeout":  "5s",
	"log.level":                 "info",
	"sentry.dsn":                "",
	"sentry.environment":        "local",
	"sentry.traces_sample_rate": 0.0,
	"tz":                        "UTC",
}
