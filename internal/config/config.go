// Package config loads the Kaggle credential configuration from the
// process environment. Credentials are resolved once at startup and
// injected into the kaggle client; nothing reads the environment after
// the server starts serving requests.
package config

import (
	"os"
	"strings"
	"time"

	"kaggle-mcp/internal/errors"
)

// Environment variables consumed at startup.
const (
	EnvUsername = "KAGGLE_USERNAME"
	EnvKey      = "KAGGLE_KEY"
	EnvBinary   = "KAGGLE_MCP_BINARY"
)

// DefaultCommandTimeout bounds every kaggle CLI invocation.
const DefaultCommandTimeout = 60 * time.Second

// Config holds the resolved startup configuration.
type Config struct {
	// Username and Key authenticate the kaggle CLI against the platform.
	Username string
	Key      string

	// Binary is the kaggle executable name or path.
	Binary string

	// CommandTimeout bounds a single CLI invocation.
	CommandTimeout time.Duration
}

// Load resolves the configuration from the environment. Missing
// credentials are a fatal startup error, not a per-request failure.
func Load() (*Config, error) {
	cfg := &Config{
		Username:       os.Getenv(EnvUsername),
		Key:            os.Getenv(EnvKey),
		Binary:         os.Getenv(EnvBinary),
		CommandTimeout: DefaultCommandTimeout,
	}

	if cfg.Binary == "" {
		cfg.Binary = "kaggle"
	}

	var missing []string
	if cfg.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if cfg.Key == "" {
		missing = append(missing, EnvKey)
	}
	if len(missing) > 0 {
		return nil, errors.Configuration("missing required environment variables: "+strings.Join(missing, ", "), nil)
	}

	return cfg, nil
}
