package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/dothis/internal/client/client"
	"github.com/dmitrijs2005/dothis/internal/client/config"
	"github.com/dmitrijs2005/dothis/internal/client/services"
	"github.com/dmitrijs2005/dothis/internal/logging"
)

var breakerSettings = client.BreakerSettings{ConsecutiveFailures: 3, OpenTimeout: 30 * time.Second}

// Run executes the command line args (without the program name) and returns
// the process exit status. Configuration is read from args and getenv; when
// no token is configured and stdin is a terminal the user is prompted for one.
func Run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, rest, err := config.LoadConfig(args, getenv)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	log := logging.NewTextLogger(stderr, cfg.Verbose)

	if cfg.APIToken == "" {
		if f, ok := stdin.(*os.File); ok && isTerminal(int(f.Fd())) {
			tok, err := GetToken(stderr, int(f.Fd()))
			if err != nil {
				fmt.Fprintln(stderr, "error: reading token:", err)
				return ExitUsage
			}
			cfg.APIToken = tok
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	c, err := client.NewHTTPClient(cfg.Endpoint, cfg.APIToken,
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(log),
		client.WithSkipMalformedRecords(),
		client.WithCircuitBreaker(breakerSettings),
	)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	app := NewApp(services.NewSyncService(c, nil, log), stdin, stdout, log)
	if err := app.Dispatch(ctx, rest); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitCode(err)
	}
	return ExitOK
}
