package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type validator interface {
	Validate() error
}

func Test_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         validator
		expectError bool
	}{
		{name: "cors - valid", cfg: &CORSConfig{AllowedOrigins: []string{"http://localhost:3001"}, AllowedMethods: []string{"GET"}}},
		{name: "cors - no origins", cfg: &CORSConfig{AllowedMethods: []string{"GET"}}, expectError: true},
		{name: "cors - no methods", cfg: &CORSConfig{AllowedOrigins: []string{"*"}}, expectError: true},
		{name: "cors - negative max age", cfg: &CORSConfig{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET"}, MaxAge: -time.Second}, expectError: true},
		{name: "log - empty level", cfg: &LogConfig{}},
		{name: "log - upper case", cfg: &LogConfig{Level: "DEBUG"}},
		{name: "log - unknown", cfg: &LogConfig{Level: "trace"}, expectError: true},
		{name: "metrics - disabled ignores path", cfg: &MetricsConfig{Path: "x"}},
		{name: "metrics - relative path", cfg: &MetricsConfig{Enabled: true, Path: "metrics"}, expectError: true},
		{name: "nats - disabled", cfg: &NATSConfig{}},
		{name: "nats - enabled", cfg: &NATSConfig{Enabled: true, Url: "nats://localhost:4222", Timeout: time.Second, Stream: "CATALOG"}},
		{name: "nats - no stream", cfg: &NATSConfig{Enabled: true, Url: "nats://localhost:4222", Timeout: time.Second}, expectError: true},
		{name: "nats - no timeout", cfg: &NATSConfig{Enabled: true, Url: "nats://localhost:4222", Stream: "CATALOG"}, expectError: true},
		{name: "pprof - disabled", cfg: &PProfConfig{}},
		{name: "pprof - valid", cfg: &PProfConfig{Enabled: true, Addr: "localhost:6060"}},
		{name: "pprof - missing port", cfg: &PProfConfig{Enabled: true, Addr: "localhost"}, expectError: true},
		{name: "shutdown - zero", cfg: &ShutdownConfig{}, expectError: true},
		{name: "http - bad port", cfg: &HTTPConfig{Port: 0}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.cfg.Validate()
			// then
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
