package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dothis/internal/flagx"
	"github.com/dmitrijs2005/dothis/internal/timex"
)

// JsonConfig is the on-disk form of Config. Timeout accepts "10s" or
// integer nanoseconds.
type JsonConfig struct {
	Endpoint string         `json:"endpoint"`
	APIToken string         `json:"api_token"`
	Timeout  timex.Duration `json:"timeout"`
	Verbose  *bool          `json:"verbose"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Fields absent from the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if jc.Endpoint != "" {
		cfg.Endpoint = jc.Endpoint
	}
	if jc.APIToken != "" {
		cfg.APIToken = jc.APIToken
	}
	if jc.Timeout.Duration != 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
	return nil
}
