// Package config loads runtime configuration for the Artfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   profile directory for local state
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "1.5s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "profile_dir": "/home/user/.config/artfolio",
//	  "report_poll_interval": "1.5s",
//	  "report_poll_timeout": "2m"
//	}
//
// Primary API
//
//   - type Config                     — holds connection and polling settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
