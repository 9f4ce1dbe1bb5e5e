package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/dothis/internal/buildinfo"
	"github.com/dmitrijs2005/dothis/internal/client/services"
	"github.com/dmitrijs2005/dothis/internal/logging"
)

type App struct {
	sync     services.SyncService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewApp returns an App reading prompts from in and writing tables to out.
func NewApp(svc services.SyncService, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		sync:     svc,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
}

// Dispatch runs one command given as arguments, e.g. ["list", "projects"].
func (a *App) Dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list", "ls":
		resource := "tasks"
		if len(rest) > 0 {
			resource = rest[0]
		}
		if len(rest) > 1 {
			return usagef("list takes one resource, got %d", len(rest))
		}
		return a.List(ctx, resource)
	case "add":
		return a.Add(ctx, rest)
	case "delete", "rm":
		return a.Delete(ctx, rest)
	case "sync":
		return a.Sync(ctx)
	case "version":
		buildinfo.PrintBuildData(a.out)
		return nil
	case "shell":
		runREPL(ctx, a, bufio.NewScanner(a.reader), a.out)
		return nil
	default:
		return usagef("unknown command %q", cmd)
	}
}
