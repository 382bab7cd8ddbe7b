package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/artfolio/artfolio-cli/internal/flagx"
	"github.com/artfolio/artfolio-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1.5s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL            string         `json:"base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	ProfileDir         string         `json:"profile_dir"`
	ReportPollInterval timex.Duration `json:"report_poll_interval"`
	ReportPollTimeout  timex.Duration `json:"report_poll_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.ProfileDir != "" {
		cfg.ProfileDir = jc.ProfileDir
	}
	if jc.ReportPollInterval.Duration != 0 {
		cfg.ReportPollInterval = time.Duration(jc.ReportPollInterval.Duration)
	}
	if jc.ReportPollTimeout.Duration != 0 {
		cfg.ReportPollTimeout = time.Duration(jc.ReportPollTimeout.Duration)
	}
}
