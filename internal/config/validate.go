package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	for name, d := range map[string]int64{
		"read_timeout":     int64(c.Server.ReadTimeout),
		"write_timeout":    int64(c.Server.WriteTimeout),
		"shutdown_timeout": int64(c.Server.ShutdownTimeout),
	} {
		if d <= 0 {
			return fmt.Errorf("server.%s must be > 0", name)
		}
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors.allowed_origins must list at least one origin")
	}
	return nil
}
