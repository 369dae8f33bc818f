package config

import "fmt"

// StoreMode selects where the session identity record lives.
type StoreMode string

const (
	// StoreModeRedis persists the identity in Redis.
	StoreModeRedis StoreMode = "redis"
	// StoreModeMemory keeps the identity in process memory, lost on
	// restart. Intended for development and tests.
	StoreModeMemory StoreMode = "memory"
)

// UnmarshalText lets the env parser read a StoreMode and reject
// unknown values early.
func (m *StoreMode) UnmarshalText(text []byte) error {
	switch StoreMode(text) {
	case StoreModeRedis, StoreModeMemory:
		*m = StoreMode(text)
		return nil
	case "":
		*m = StoreModeRedis
		return nil
	default:
		return fmt.Errorf("unknown session store mode %q", text)
	}
}

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Store selects the session store backend.
	Store StoreMode `env:"STORE" envDefault:"redis"`
	// Key is the storage key the identity record is saved under.
	// Empty means the store's default.
	Key string `env:"KEY" envDefault:""`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to session configuration values.
func (c *SessionConfig) Sanitize() {
	if c.Store == "" {
		c.Store = StoreModeRedis
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
