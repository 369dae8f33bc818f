package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: REST backend configuration
//   - session.go: Session store configuration
type AppConfig struct {
	// IsDev controls development mode behavior (demo seeding, looser
	// guardrails). Set DEV=true or NODE_ENV=development for
	// development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Seed controls whether the dev seed runs on startup. Only
	// honored in development mode.
	Seed bool `env:"SEED" envDefault:"true"`

	// Backend configuration
	Backend BackendConfig `envPrefix:"BACKEND_"`

	// Session store configuration
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// ShouldSeed reports whether the dev seed should run on startup.
func (c *AppConfig) ShouldSeed() bool {
	return c.IsDev && c.Seed
}
