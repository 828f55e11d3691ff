// Package config provides configuration loading and validation for
// enigmakit.
//
// It uses Viper to load machine settings from files and environment
// variables, supporting YAML config files, .env files, and
// environment-specific overrides.
//
// # Usage
//
//	cfg, err := config.Load("enigma")
//
// Environment variables override file values using the ENIGMA_ prefix
// with underscore-separated paths (e.g., ENIGMA_OFFSETS,
// ENIGMA_LOGGING_LEVEL).
package config
