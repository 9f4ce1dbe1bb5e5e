// Package flagx picks a subset of flags out of an argument list so that
// several independent flag sets can share one command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Split partitions args into the arguments that belong to the given flags and
// everything else, preserving order in both.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -e https://host/sync
//  2. Flag and value combined with '=':      -e=https://host/sync
//  3. Boolean flag on its own:               -v
//
// A following argument that starts with "-" is never taken as a value.
// Boolean flags never consume the next argument, so "-v list" keeps "list"
// in rest.
//
// Parameters:
//
//	args    — the command-line arguments (usually os.Args[1:])
//	valued  — flag names that take a value (e.g. []string{"-t", "-e"})
//	boolean — flag names that take none (e.g. []string{"-v"})
//
// Returns:
//
//	known — the matched flags with their values, ready for flag.FlagSet.Parse
//	rest  — everything else: positional arguments and unknown flags
func Split(args []string, valued, boolean []string) (known, rest []string) {
	takesValue := make(map[string]bool, len(valued)+len(boolean))
	for _, f := range valued {
		takesValue[f] = true
	}
	for _, f := range boolean {
		takesValue[f] = false
	}

	known = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := takesValue[name]; ok {
				known = append(known, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		withValue, ok := takesValue[arg]
		if !ok {
			rest = append(rest, arg)
			continue
		}
		known = append(known, arg)
		if withValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			known = append(known, args[i+1])
			i++
		}
	}

	return known, rest
}

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags. Every
// allowed flag is treated as taking a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	known, _ := Split(args, allowedFlags, nil)
	return known
}

// ConfigPath returns the value of -c or -config in args, or "" when neither is set.
// The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
