package app

import (
	"os"
	"strconv"
	"time"

	"github.com/shhac/docsnip/internal/clipboard"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging with source locations.
	Debug bool

	// CopyResetDelay is how long the "Copied!" indicator stays visible.
	// Zero means the stored preference or the default applies.
	CopyResetDelay time.Duration

	// Theme forces "light" or "dark". Empty leaves the stored preference.
	Theme string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigFromEnv reads DOCSNIP_DEBUG, DOCSNIP_COPY_RESET and DOCSNIP_THEME.
// Malformed values are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DOCSNIP_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}

	if v := os.Getenv("DOCSNIP_COPY_RESET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CopyResetDelay = d
		}
	}

	switch v := os.Getenv("DOCSNIP_THEME"); v {
	case "light", "dark", "system":
		cfg.Theme = v
	}

	return cfg
}

// EffectiveResetDelay picks the env override, then the stored preference,
// then the default.
func (c *Config) EffectiveResetDelay(preferred time.Duration) time.Duration {
	switch {
	case c.CopyResetDelay > 0:
		return c.CopyResetDelay
	case preferred > 0:
		return preferred
	default:
		return clipboard.DefaultResetDelay
	}
}
