package config

import "strings"

const (
	EnvAPIToken = "TODOIST_API_TOKEN"
	EnvEndpoint = "DOTHIS_ENDPOINT"
)

// parseEnv overlays non-empty environment values onto cfg.
func parseEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := strings.TrimSpace(getenv(EnvAPIToken)); v != "" {
		cfg.APIToken = v
	}
	if v := strings.TrimSpace(getenv(EnvEndpoint)); v != "" {
		cfg.Endpoint = v
	}
}
