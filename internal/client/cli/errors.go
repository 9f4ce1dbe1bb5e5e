package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dothis/internal/client/codec"
	"github.com/dmitrijs2005/dothis/internal/client/config"
	"github.com/dmitrijs2005/dothis/internal/client/models"
)

const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitUnavailable = 69
)

var (
	ErrUsage         = errors.New("usage")
	ErrNoResources   = errors.New("no resources found")
	ErrCommandFailed = errors.New("command refused")
)

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCode maps an error returned by Run's commands to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage),
		errors.Is(err, models.ErrUnknownKind),
		errors.Is(err, models.ErrInvalidMutation),
		errors.Is(err, codec.ErrUnknownColorName),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitUnavailable
	}
}
