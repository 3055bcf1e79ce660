package config

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a TOML file on top of the defaults, resolves environment
// values and validates the result.
func LoadFile(path string, logger *slog.Logger) (*Config, error) {
	cfg := NewDefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode TOML file '%s': %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown configuration key", "key", key.String(), "path", path)
	}

	if cfg.OAuth2 != nil {
		cfg.OAuth2.FillEnvVars()
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	for _, w := range Warnings(cfg) {
		logger.Warn(w, "path", path)
	}

	logger.Debug("configuration loaded", "path", path, "verifier_length", cfg.Verifier.Length, "alphabet", cfg.Verifier.Alphabet, "oauth2", cfg.OAuth2 != nil)
	return cfg, nil
}
