package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/connectfour.yaml
var defaultYAML []byte

// Environment variables read by ApplyEnv.
const (
	EnvVariant  = "CONNECTFOUR_VARIANT"
	EnvDB       = "CONNECTFOUR_DB"
	EnvLogLevel = "CONNECTFOUR_LOG_LEVEL"
	EnvSSHAddr  = "CONNECTFOUR_SSH_ADDR"
	EnvIdle     = "CONNECTFOUR_IDLE_TIMEOUT_MINUTES"
)

// Load reads the configuration.
// Search order: customPath -> ~/.connectfour/config.yaml -> ./configs/connectfour.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed. Keys absent from the file
// keep their Default() values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := UserConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "connectfour.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv loads the given .env files (".env" when none are named) without
// overriding variables already set, then applies the CONNECTFOUR_* overrides.
// Missing .env files are ignored.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to load env file: %w", err)
	}

	cfg.Variant = getEnv(EnvVariant, cfg.Variant)
	cfg.Storage.Path = getEnv(EnvDB, cfg.Storage.Path)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Server.Address = getEnv(EnvSSHAddr, cfg.Server.Address)

	if v := os.Getenv(EnvIdle); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvIdle, v, err)
		}
		cfg.Server.IdleTimeoutMinutes = minutes
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Dir returns ~/.connectfour, or empty if the home directory is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connectfour")
}

// UserConfigPath returns ~/.connectfour/config.yaml, or empty if the home directory is unavailable.
func UserConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
