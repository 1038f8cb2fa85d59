// Package config loads the connectfour configuration from YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/core"
	"github.com/vovakirdan/connectfour/internal/variant"
)

// Config is the full application configuration.
type Config struct {
	Variant string        `yaml:"variant"`
	Players PlayersConfig `yaml:"players"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// PlayersConfig holds the presentation of both players.
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// PlayerConfig defines how a player is shown on screen.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // single character drawn for the disc
	Color string `yaml:"color"` // see core.ParseColor: a name ("bright-red") or palette code 1-7, 9-15, 208, 245
}

// StorageConfig locates the results database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig sets the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // generated under ~/.connectfour when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the session idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: variant.Default,
		Players: PlayersConfig{
			One: PlayerConfig{Name: "Player One", Glyph: "●", Color: "bright-red"},
			Two: PlayerConfig{Name: "Player Two", Glyph: "●", Color: "bright-yellow"},
		},
		Storage: StorageConfig{Path: "~/.connectfour/results.db"},
		Log:     LogConfig{Level: "info"},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// Validate checks the configuration for values the program cannot work with.
func (c Config) Validate() error {
	var errs []error

	if !variant.Exists(c.Variant) {
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Variant))
	}
	for _, p := range []struct {
		key string
		cfg PlayerConfig
	}{{"players.one", c.Players.One}, {"players.two", c.Players.Two}} {
		if p.cfg.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is empty", p.key))
		}
		if utf8.RuneCountInString(p.cfg.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("%s.glyph must be a single character, got %q", p.key, p.cfg.Glyph))
		}
		if _, ok := core.ParseColor(p.cfg.Color); !ok {
			errs = append(errs, fmt.Errorf("%s.color: unknown color %q", p.key, p.cfg.Color))
		}
	}
	if c.Players.One.Glyph == c.Players.Two.Glyph && c.Players.One.Color == c.Players.Two.Color {
		errs = append(errs, errors.New("players must differ in glyph or color"))
	}
	if c.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path is empty"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Server.IdleTimeoutMinutes <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must be positive, got %d", c.Server.IdleTimeoutMinutes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
