package config

import (
	"fmt"
	"strings"
	"time"
)

// ShutdownConfig bounds how long servers may take to drain on SIGINT/SIGTERM.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the shutdown configuration.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout: %s", c.Timeout)
	}
	return nil
}
