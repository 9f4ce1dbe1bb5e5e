package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultEndpoint, c.Endpoint)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Empty(t, c.APIToken)
	assert.False(t, c.Verbose)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint":  "http://file.example/sync",
		"api_token": "from-file",
		"timeout":   "3s",
	})

	t.Run("file only", func(t *testing.T) {
		cfg, rest, err := LoadConfig([]string{"-c", path, "list", "projects"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "http://file.example/sync", cfg.Endpoint)
		assert.Equal(t, "from-file", cfg.APIToken)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"list", "projects"}, rest)
	})

	t.Run("env beats file", func(t *testing.T) {
		cfg, _, err := LoadConfig([]string{"-c", path}, envMap(map[string]string{EnvAPIToken: "from-env"}))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.APIToken)
		assert.Equal(t, "http://file.example/sync", cfg.Endpoint)
	})

	t.Run("flags beat env", func(t *testing.T) {
		cfg, rest, err := LoadConfig(
			[]string{"-c", path, "-t", "from-flag", "-timeout=1m", "-v", "add", "task", "Buy milk"},
			envMap(map[string]string{EnvAPIToken: "from-env", EnvEndpoint: "http://env.example/sync"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.APIToken)
		assert.Equal(t, "http://env.example/sync", cfg.Endpoint)
		assert.Equal(t, time.Minute, cfg.Timeout)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, []string{"add", "task", "Buy milk"}, rest)
	})
}

func TestLoadConfig_BadFlag(t *testing.T) {
	_, _, err := LoadConfig([]string{"-timeout", "soon"}, nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "ok", mutate: func(c *Config) { c.APIToken = "x" }},
		{name: "missing token", mutate: func(c *Config) {}, wantErr: true},
		{name: "bad endpoint", mutate: func(c *Config) { c.APIToken = "x"; c.Endpoint = "not a url" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.APIToken = "x"; c.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}
