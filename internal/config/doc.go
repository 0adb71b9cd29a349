// Package config provides 12-factor configuration for the bigmath CLI.
//
// Configuration is loaded from environment variables with sensible
// defaults; command-line flags can override individual values.
//
// Configuration Sections:
//   - Evaluator: requested precision and rounding mode
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	ctx, _ := cfg.Evaluator.Context()
//
// Environment Variables:
//   - BIGMATH_PRECISION, BIGMATH_ROUNDING
//   - LOG_LEVEL, LOG_DEV
package config
