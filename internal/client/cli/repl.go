package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL needs. App satisfies it; tests
// can provide a stub.
type execIface interface {
	Dispatch(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them to a, printing
// errors to w instead of stopping. The loop ends on EOF, "exit" or "quit".
//
//	help                    show available commands
//	list [resource]         list a collection (default: tasks)
//	add project|task|label  create an object
//	delete KIND ID          delete an object
//	sync                    pull changes since the last sync
//	exit | quit             leave the shell
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprint(w, "dothis> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(w, "Available commands: list, add, delete, sync, exit")
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "shell":
			fmt.Fprintln(w, "already in the shell")
		default:
			if err := a.Dispatch(ctx, parts); err != nil {
				fmt.Fprintln(w, "error:", err)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}
