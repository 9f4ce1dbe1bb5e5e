package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		rest     []string
		wantErr  bool
	}{
		{
			name:     "all flags",
			args:     []string{"-t", "tok", "-e", "http://localhost:8080/sync", "-timeout", "5s", "-v", "list", "items"},
			expected: &Config{APIToken: "tok", Endpoint: "http://localhost:8080/sync", Timeout: 5 * time.Second, Verbose: true},
			rest:     []string{"list", "items"},
		},
		{
			name:     "config flag is accepted and ignored",
			args:     []string{"-c", "cfg.json", "list"},
			expected: &Config{},
			rest:     []string{"list"},
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-timeout", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			rest, err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
			assert.Equal(t, tt.rest, rest)
		})
	}
}
