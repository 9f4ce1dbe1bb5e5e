package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/dothis/internal/flagx"
)

var (
	valuedFlags = []string{"-t", "-e", "-timeout", "-c", "-config"}
	boolFlags   = []string{"-v"}
)

// parseFlags overlays cfg with the configuration flags found anywhere in args
// and returns the remaining arguments in order.
//
//	-t string         API token
//	-e string         sync endpoint URL
//	-timeout duration per-request timeout
//	-v                debug logging
func parseFlags(cfg *Config, args []string) ([]string, error) {
	known, rest := flagx.Split(args, valuedFlags, boolFlags)

	fs := flag.NewFlagSet("dothis", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIToken, "t", cfg.APIToken, "API token")
	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "sync endpoint URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "request timeout")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	// consumed by parseJson
	fs.String("c", "", "config file")
	fs.String("config", "", "config file")

	if err := fs.Parse(known); err != nil {
		return nil, err
	}
	return rest, nil
}
