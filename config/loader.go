package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix scopes the environment variables read by the loader.
const envPrefix = "ENIGMA"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads the machine configuration for a service. It searches for
// config.yml and .env files in standard locations, applies ENIGMA_
// environment variable overrides, and unmarshals the result. Defaults
// are applied; validation is left to the caller so flag overrides can
// be merged first.
func Load(serviceName string, opts ...LoaderOption) (*MachineConfig, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFile(lc.FileSystem, serviceName, "config.yml")
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFile(lc.FileSystem, serviceName, ".env")
	}

	v := viper.New()
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	// Load the .env file before reading the environment.
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			fmt.Printf("[config] warning: failed to load .env file %s: %v\n", envFile, err)
		}
	}

	bindEnvVars(v)

	cfg := &MachineConfig{Name: serviceName}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config for service %s: %w", serviceName, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// findFile searches standard locations for a config or env file,
// closest to the binary first.
func findFile(fs FileSystem, serviceName, fileName string) string {
	searchPaths := []string{
		fmt.Sprintf("./cmd/%s/%s", serviceName, fileName),
		fmt.Sprintf("../cmd/%s/%s", serviceName, fileName),
		"./config/" + fileName,
		"../config/" + fileName,
		"./" + fileName,
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnvVars maps ENIGMA_-prefixed environment variables onto viper
// keys: ENIGMA_OFFSETS -> offsets, ENIGMA_LOGGING_LEVEL -> logging.level.
func bindEnvVars(v *viper.Viper) {
	// Keys with nested config sections; their first underscore becomes
	// a section separator.
	sections := []string{"LOGGING"}

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, envPrefix+"_") {
			continue
		}
		key = strings.TrimPrefix(key, envPrefix+"_")

		viperKey := strings.ToLower(key)
		for _, section := range sections {
			if strings.HasPrefix(key, section+"_") {
				viperKey = strings.ToLower(section) + "." + strings.ToLower(strings.TrimPrefix(key, section+"_"))
				break
			}
		}
		v.Set(viperKey, value)
	}
}
