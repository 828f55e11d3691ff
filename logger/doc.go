// Package logger provides structured logging for enigmakit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("machine")
//	log.Info("encoded", logger.Fields("chars", 10))
package logger
