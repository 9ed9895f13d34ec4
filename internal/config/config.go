// Package config holds the catalog service configuration.
package config

import (
	"strings"
	"time"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig     `koanf:"server"`
	CORS       config.CORSConfig     `koanf:"cors"`
	Log        config.LogConfig      `koanf:"log"`
	PProf      config.PProfConfig    `koanf:"pprof"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
	Metrics    config.MetricsConfig  `koanf:"metrics"`
	NATS       config.NATSConfig     `koanf:"nats"`
}

// Defaults returns the values used when neither config.yaml nor the environment set a key.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               3000,
		"server.maxheaderbytes":     1 << 20,
		"server.timeout.read":       5 * time.Second,
		"server.timeout.write":      10 * time.Second,
		"server.timeout.idle":       120 * time.Second,
		"server.timeout.readheader": 2 * time.Second,

		"cors.allowedorigins": []string{"http://localhost:3001"},
		"cors.allowedmethods": []string{"GET", "POST", "PATCH", "DELETE"},
		"cors.allowedheaders": []string{"Content-Type", "Authorization"},
		"cors.maxage":         5 * time.Minute,

		"log.level": "info",

		"pprof.enabled": false,
		"pprof.addr":    "localhost:6060",

		"shutdown.timeout": 30 * time.Second,

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"nats.enabled": false,
		"nats.url":     "nats://localhost:4222",
		"nats.timeout": 5 * time.Second,
		"nats.stream":  "CATALOG",
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.CORS.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.NATS.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.CORS,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Metrics,
		&c.NATS,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
