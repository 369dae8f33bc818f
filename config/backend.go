package config

import (
	"strings"
	"time"
)

// BackendConfig contains the REST backend configuration.
type BackendConfig struct {
	// URL is the base URL of the collection API.
	URL string `env:"URL" envDefault:"http://localhost:3000"`
	// Timeout bounds each backend round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to backend configuration values.
func (c *BackendConfig) Sanitize() {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}
