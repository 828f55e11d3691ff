package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMachineConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := MachineConfig{Name: "enigma"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := MachineConfig{Name: "enigma", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
	})

	t.Run("name defaults to enigma", func(t *testing.T) {
		cfg := MachineConfig{}
		cfg.ApplyDefaults()
		if cfg.Name != "enigma" {
			t.Errorf("expected name 'enigma', got %q", cfg.Name)
		}
	})

	t.Run("service name propagates to logging", func(t *testing.T) {
		cfg := MachineConfig{Name: "enigma-test"}
		cfg.ApplyDefaults()
		if cfg.Logging.ServiceName != "enigma-test" {
			t.Errorf("expected logging service name 'enigma-test', got %q", cfg.Logging.ServiceName)
		}
	})

	t.Run("settings are never defaulted", func(t *testing.T) {
		cfg := MachineConfig{Name: "enigma"}
		cfg.ApplyDefaults()
		if cfg.Offsets != "" || cfg.Rings != "" || cfg.Notches != "" {
			t.Error("machine settings must not receive defaults")
		}
	})
}

func TestMachineConfigValidate(t *testing.T) {
	valid := func() MachineConfig {
		cfg := MachineConfig{
			Name:    "enigma",
			Offsets: "NFC",
			Rings:   "GYZ",
			Notches: "DFR",
		}
		cfg.ApplyDefaults()
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := valid()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})

	t.Run("missing offsets", func(t *testing.T) {
		cfg := valid()
		cfg.Offsets = ""
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for missing offsets")
		}
		if !strings.Contains(err.Error(), "offsets") {
			t.Errorf("error should mention offsets, got %v", err)
		}
	})

	t.Run("offsets wrong length", func(t *testing.T) {
		cfg := valid()
		cfg.Offsets = "NFCA"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for 4-letter offsets")
		}
	})

	t.Run("notches with digit", func(t *testing.T) {
		cfg := valid()
		cfg.Notches = "D1R"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for non-letter notch")
		}
	})

	t.Run("bad environment", func(t *testing.T) {
		cfg := valid()
		cfg.Environment = "qa"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown environment")
		}
	})

	t.Run("bad logging config", func(t *testing.T) {
		cfg := valid()
		cfg.Logging.Level = "loud"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for invalid logging level")
		}
	})
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `name: enigma
environment: production
offsets: NFC
rings: GYZ
notches: DFR
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("enigma", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Offsets != "NFC" || cfg.Rings != "GYZ" || cfg.Notches != "DFR" {
		t.Errorf("settings = %q/%q/%q, want NFC/GYZ/DFR", cfg.Offsets, cfg.Rings, cfg.Notches)
	}
	if cfg.Environment != "production" {
		t.Errorf("environment = %q, want production", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `offsets: AAA
rings: AAA
notches: AAA
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ENIGMA_OFFSETS", "NFC")
	t.Setenv("ENIGMA_LOGGING_LEVEL", "warn")

	cfg, err := Load("enigma", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Offsets != "NFC" {
		t.Errorf("offsets = %q, want env override NFC", cfg.Offsets)
	}
	if cfg.Rings != "AAA" {
		t.Errorf("rings = %q, want file value AAA", cfg.Rings)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging level = %q, want env override warn", cfg.Logging.Level)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "ENIGMA_NOTCHES=DFR\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	defer os.Unsetenv("ENIGMA_NOTCHES")

	cfg, err := Load("enigma", WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Notches != "DFR" {
		t.Errorf("notches = %q, want DFR from .env", cfg.Notches)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	cfg, err := Load("no-such-service")
	if err != nil {
		t.Fatalf("Load without files should succeed with defaults, got %v", err)
	}
	if cfg.Name != "no-such-service" {
		t.Errorf("name = %q, want no-such-service", cfg.Name)
	}
	// Settings are absent, so validation must fail.
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure for missing settings")
	}
}

type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error {
	return nil
}

func TestFindFileSearchOrder(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{
		"./config/config.yml": true,
		"./config.yml":        true,
	}}
	if got := findFile(fs, "enigma", "config.yml"); got != "./config/config.yml" {
		t.Errorf("resolved %q, want ./config/config.yml first", got)
	}
}

func TestFindFileServiceDirWins(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{
		"./cmd/enigma/config.yml": true,
		"./config/config.yml":     true,
	}}
	if got := findFile(fs, "enigma", "config.yml"); got != "./cmd/enigma/config.yml" {
		t.Errorf("resolved %q, want ./cmd/enigma/config.yml first", got)
	}
}

func TestFindFileNotFound(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{}}
	if got := findFile(fs, "enigma", "config.yml"); got != "" {
		t.Errorf("resolved %q, want empty", got)
	}
}
