package config

import "time"

// Config holds runtime settings for the Artfolio CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - ProfileDir: directory for local state (session db, device key);
//     empty means the per-user default location.
//   - ReportPollInterval: how often to re-check a pending report result.
//   - ReportPollTimeout: how long to keep polling before giving up.
type Config struct {
	BaseURL            string
	RequestTimeout     time.Duration
	ProfileDir         string
	ReportPollInterval time.Duration
	ReportPollTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.ProfileDir = ""
	c.ReportPollInterval = 1500 * time.Millisecond
	c.ReportPollTimeout = 2 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
