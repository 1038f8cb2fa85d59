package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs so that
// Load only sees what a test writes.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected Default() %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", `
variant: mini
players:
  two:
    name: Bob
    color: blue
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Variant != "mini" {
		t.Errorf("Variant = %q, expected %q", cfg.Variant, "mini")
	}
	if cfg.Players.Two.Name != "Bob" || cfg.Players.Two.Color != "blue" {
		t.Errorf("Players.Two = %+v, expected Bob in blue", cfg.Players.Two)
	}
	// Unset keys keep their defaults.
	if cfg.Players.Two.Glyph != "●" {
		t.Errorf("Players.Two.Glyph = %q, expected default", cfg.Players.Two.Glyph)
	}
	if cfg.Server.Address != ":23235" {
		t.Errorf("Server.Address = %q, expected default", cfg.Server.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := writeFile(t, t.TempDir(), "bad.yaml", "variant: [unclosed")
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	writeFile(t, "configs", "connectfour.yaml", "variant: large\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Variant != "large" {
		t.Errorf("Variant = %q, expected ./configs value %q", cfg.Variant, "large")
	}

	userDir := filepath.Join(home, ".connectfour")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	writeFile(t, userDir, "config.yaml", "variant: square\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Variant != "square" {
		t.Errorf("Variant = %q, expected user config value %q", cfg.Variant, "square")
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvVariant, "mini")
	t.Setenv(EnvDB, "/tmp/results.db")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSSHAddr, "127.0.0.1:2222")
	t.Setenv(EnvIdle, "5")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Variant != "mini" || cfg.Storage.Path != "/tmp/results.db" ||
		cfg.Log.Level != "debug" || cfg.Server.Address != "127.0.0.1:2222" ||
		cfg.Server.IdleTimeoutMinutes != 5 {
		t.Errorf("ApplyEnv result = %+v", cfg)
	}
}

func TestApplyEnvFile(t *testing.T) {
	isolate(t)
	// t.Setenv restores the variable after the file sets it.
	t.Setenv(EnvVariant, "")
	os.Unsetenv(EnvVariant)
	t.Setenv(EnvLogLevel, "warn")

	envFile := writeFile(t, t.TempDir(), "test.env",
		EnvVariant+"=large\n"+EnvLogLevel+"=debug\n")

	cfg := Default()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Variant != "large" {
		t.Errorf("Variant = %q, expected value from env file", cfg.Variant)
	}
	// Variables already set win over the file.
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, expected existing environment value", cfg.Log.Level)
	}
}

func TestApplyEnvMissingFileIgnored(t *testing.T) {
	isolate(t)
	cfg := Default()
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestApplyEnvInvalidIdle(t *testing.T) {
	isolate(t)
	t.Setenv(EnvIdle, "soon")
	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("non-numeric idle timeout should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"unknown variant", func(c *Config) { c.Variant = "hex" }, "unknown variant"},
		{"empty name", func(c *Config) { c.Players.One.Name = "" }, "players.one.name"},
		{"long glyph", func(c *Config) { c.Players.Two.Glyph = "XX" }, "players.two.glyph"},
		{"bad color", func(c *Config) { c.Players.One.Color = "ultraviolet" }, "players.one.color"},
		{"color code outside the palette", func(c *Config) { c.Players.Two.Color = "100" }, "players.two.color"},
		{"identical players", func(c *Config) { c.Players.Two = c.Players.One }, "must differ"},
		{"empty storage", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"zero idle", func(c *Config) { c.Server.IdleTimeoutMinutes = 0 }, "idle_timeout_minutes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateColorCodes(t *testing.T) {
	for _, code := range []string{"1", "9", "15", "208", "245"} {
		cfg := Default()
		cfg.Players.One.Color = code
		if err := cfg.Validate(); err != nil {
			t.Errorf("color %q: Validate() = %v, expected nil", code, err)
		}
	}
}

func TestIdleTimeout(t *testing.T) {
	cfg := Default()
	if got := cfg.Server.IdleTimeout().Minutes(); got != 30 {
		t.Errorf("IdleTimeout() = %v minutes, expected 30", got)
	}
}
