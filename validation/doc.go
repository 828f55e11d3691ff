// Package validation provides input validation utilities for enigmakit.
//
// It supports both struct tag validation (using the validator library)
// and programmatic validation with error collection. Struct tag
// validation is recommended for configuration structs.
//
// # Struct Tag Validation
//
//	type MachineConfig struct {
//	    Offsets string `validate:"required,len=3,alpha"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Setting("offsets", offsets)
//	err := v.Validate()
package validation
