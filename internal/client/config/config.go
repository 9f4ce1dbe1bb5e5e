package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultEndpoint = "https://api.todoist.com/sync/v8/sync"
	DefaultTimeout  = 10 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the dothis CLI.
//
// Fields:
//   - Endpoint: URL of the sync endpoint; reads are sent as GET, writes as POST.
//   - APIToken: personal API token, sent as the token parameter and as a Bearer header.
//   - Timeout: bound on one request round trip (e.g., 10*time.Second).
//   - Verbose: enables debug logging of requests and responses. The token is never logged.
//
// APIToken has no default; Validate rejects a Config without one.
type Config struct {
	Endpoint string        `validate:"required,url"`
	APIToken string        `validate:"required"`
	Timeout  time.Duration `validate:"gt=0"`
	Verbose  bool
}

// LoadDefaults populates c with defaults. APIToken has no default.
func (c *Config) LoadDefaults() {
	c.Endpoint = DefaultEndpoint
	c.Timeout = DefaultTimeout
}

// LoadConfig constructs a Config from layered sources.
//
// Behavior:
//  1. defaults (LoadDefaults)
//  2. the JSON file named by -c/-config, if any
//  3. the environment (TODOIST_API_TOKEN, DOTHIS_ENDPOINT)
//  4. command-line flags (-t, -e, -timeout, -v)
//
// Later sources take precedence over earlier ones. The result is not
// validated; call Validate once the token prompt, if any, has run.
//
// Parameters:
//
//	args   — the command-line arguments (usually os.Args[1:])
//	getenv — environment lookup, usually os.Getenv; nil skips the environment
//
// Returns:
//
//	The Config and the arguments that are not configuration flags, in their
//	original order, or an error for an unreadable JSON file or a bad flag value.
func LoadConfig(args []string, getenv func(string) string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, nil, err
	}
	parseEnv(cfg, getenv)
	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that c is usable for talking to the server. Every failing
// field is reported in one error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
