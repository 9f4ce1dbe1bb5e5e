// Package config loads runtime configuration for the dothis CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: TODOIST_API_TOKEN and DOTHIS_ENDPOINT.
//  4. Command-line flags.
//
// Flags
//
//	-t string         API token
//	-e string         sync endpoint URL
//	-timeout duration per-request timeout, e.g. 5s
//	-v                debug logging
//
// # JSON schema
//
//	{
//	  "endpoint": "https://api.todoist.com/sync/v8/sync",
//	  "api_token": "0123abcd",
//	  "timeout": "10s",
//	  "verbose": false
//	}
package config
