package config

import (
	"fmt"

	"github.com/kbukum/enigmakit/logger"
	"github.com/kbukum/enigmakit/validation"
)

// MachineConfig contains everything needed to construct and run a
// cipher machine: the three rotor setting strings plus the ambient
// service fields.
//
// The three setting strings have no defaults: the machine's behavior
// is entirely determined by them, so they must always be provided
// explicitly (file, environment, or flag).
type MachineConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	// Offsets are the initial rotor positions, rightmost rotor first.
	Offsets string `yaml:"offsets" mapstructure:"offsets" validate:"required,len=3,alpha"`
	// Rings are the ring settings, rightmost rotor first.
	Rings string `yaml:"rings" mapstructure:"rings" validate:"required,len=3,alpha"`
	// Notches are the carry positions, rightmost rotor first.
	Notches string `yaml:"notches" mapstructure:"notches" validate:"required,len=3,alpha"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the base configuration.
// Machine settings are deliberately left untouched.
func (c *MachineConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "enigma"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate service name into logging so Init() uses the right tag.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration, including the machine setting
// strings via their struct tags.
func (c *MachineConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
