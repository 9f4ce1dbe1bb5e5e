package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

var errEmptyInput = errors.New("empty input")

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetToken prints a prompt to w and reads an API token from the terminal
// behind fd without echo.
func GetToken(w io.Writer, fd int) (string, error) {
	if _, err := fmt.Fprint(w, "Todoist API token: "); err != nil {
		return "", err
	}
	b, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}

	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", errEmptyInput
	}
	return tok, nil
}
