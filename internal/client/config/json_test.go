package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads from -config", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"endpoint":  "http://www.example/sync",
			"api_token": "abc",
			"timeout":   "10s",
			"verbose":   true,
		})

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "http://www.example/sync", cfg.Endpoint)
		assert.Equal(t, "abc", cfg.APIToken)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.True(t, cfg.Verbose)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{"timeout": 2000000000})

		cfg := &Config{Endpoint: "http://defaults", APIToken: "keep", Verbose: true}
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, "http://defaults", cfg.Endpoint)
		assert.Equal(t, "keep", cfg.APIToken)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
		assert.True(t, cfg.Verbose)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{Endpoint: "http://defaults", Timeout: 42 * time.Second}
		require.NoError(t, parseJson(cfg, []string{"list"}))

		assert.Equal(t, "http://defaults", cfg.Endpoint)
		assert.Equal(t, 42*time.Second, cfg.Timeout)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-config", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
