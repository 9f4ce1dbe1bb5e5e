package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/dothis/internal/client/client"
	"github.com/dmitrijs2005/dothis/internal/client/codec"
	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, ExitOK},
		{"usage", usagef("bad"), ExitUsage},
		{"unknown kind", fmt.Errorf("x: %w", models.ErrUnknownKind), ExitUsage},
		{"invalid mutation", models.ErrInvalidMutation, ExitUsage},
		{"bad color", &codec.UnknownColorNameError{Text: "mauve"}, ExitUsage},
		{"transport", &client.TransportError{Op: "fetch", Err: errors.New("refused")}, ExitUnavailable},
		{"malformed", &client.MalformedResponseError{Op: "fetch", StatusCode: 500}, ExitUnavailable},
		{"empty", ErrNoResources, ExitUnavailable},
		{"refused command", ErrCommandFailed, ExitUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
