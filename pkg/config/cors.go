package config

import (
	"fmt"
	"strings"
	"time"
)

// CORSConfig lists what cross-origin callers may do.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowedorigins"`
	AllowedMethods []string      `koanf:"allowedmethods"`
	AllowedHeaders []string      `koanf:"allowedheaders"`
	MaxAge         time.Duration `koanf:"maxage"`
}

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  allowedorigins: %s\n", strings.Join(c.AllowedOrigins, ",")))
	b.WriteString(fmt.Sprintf("  allowedmethods: %s\n", strings.Join(c.AllowedMethods, ",")))
	b.WriteString(fmt.Sprintf("  allowedheaders: %s\n", strings.Join(c.AllowedHeaders, ",")))
	b.WriteString(fmt.Sprintf("  maxage: %s\n", c.MaxAge))
	return b.String()
}

func (c *CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}
	if len(c.AllowedMethods) == 0 {
		return fmt.Errorf("at least one CORS method must be configured")
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("invalid CORS max age: %s", c.MaxAge)
	}
	return nil
}
