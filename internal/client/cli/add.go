package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/dothis/internal/client/codec"
	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/dmitrijs2005/dothis/internal/client/services"
	"github.com/dmitrijs2005/dothis/internal/flagx"
)

// Add creates one project, task or label from args such as
// ["project", "Work", "-color", "red"].
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usagef("add what? project, task or label")
	}

	kind, err := models.ParseKind(args[0])
	if err != nil {
		return usagef("cannot add %q", args[0])
	}

	var (
		m     models.Mutation
		title string
	)
	switch kind {
	case models.KindProjects:
		m, title, err = parseNewProject(args[1:])
	case models.KindItems:
		m, title, err = parseNewTask(args[1:])
	case models.KindLabels:
		m, title, err = parseNewLabel(args[1:])
	default:
		return usagef("cannot add %s", kind)
	}
	if err != nil {
		return err
	}

	batch := a.sync.NewBatch()
	cmd, err := batch.Add(m, "")
	if err != nil {
		return err
	}
	res, err := a.sync.Push(ctx, batch)
	if err != nil {
		return err
	}
	if err := commandErr(res, cmd); err != nil {
		return err
	}

	if id, ok := res.ID(cmd); ok {
		_, err = fmt.Fprintf(a.out, "created %s %q (id %d)\n", singular(kind), title, id)
	} else {
		_, err = fmt.Fprintf(a.out, "created %s %q\n", singular(kind), title)
	}
	return err
}

func commandErr(res *services.PushResult, cmd command.Command) error {
	if err := res.Err(cmd); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, cmd.Type, err)
	}
	return nil
}

func singular(k models.Kind) string {
	if k == models.KindItems {
		return "task"
	}
	return strings.TrimSuffix(string(k), "s")
}

// parseArgs parses the flags in valued from anywhere in args and returns the
// remaining words joined by spaces.
func parseArgs(name string, args, valued []string, define func(fs *flag.FlagSet)) (string, error) {
	known, rest := flagx.Split(args, valued, nil)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	define(fs)
	if err := fs.Parse(known); err != nil {
		return "", usagef("%s: %v", name, err)
	}
	for _, w := range rest {
		if strings.HasPrefix(w, "-") {
			return "", usagef("%s: unknown flag %s", name, w)
		}
	}

	text := strings.TrimSpace(strings.Join(rest, " "))
	if text == "" {
		return "", usagef("%s: missing text", name)
	}
	return text, nil
}

// colorWords lets "sky_blue" and "sky-blue" name "Sky Blue".
var colorWords = strings.NewReplacer("_", " ", "-", " ")

func parseColor(s string) (*codec.Color, error) {
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		c, err := codec.DecodeColor(n)
		if err != nil {
			return nil, fmt.Errorf("%w: -color: %w", ErrUsage, err)
		}
		return &c, nil
	}
	c, err := codec.ColorFromText(colorWords.Replace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: -color: %w", ErrUsage, err)
	}
	return &c, nil
}

func parseID(flagName, s string) (models.Ref, error) {
	if s == "" {
		return models.Ref{}, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return models.Ref{}, usagef("-%s must be a numeric id, got %q", flagName, s)
	}
	return models.RefID(id), nil
}

func parseNewProject(args []string) (models.Mutation, string, error) {
	var color, parent string
	name, err := parseArgs("add project", args, []string{"-color", "-parent"}, func(fs *flag.FlagSet) {
		fs.StringVar(&color, "color", "", "color name or code")
		fs.StringVar(&parent, "parent", "", "parent project id")
	})
	if err != nil {
		return nil, "", err
	}

	p := models.NewProject{Name: name}
	if p.Color, err = parseColor(color); err != nil {
		return nil, "", err
	}
	if p.ParentID, err = parseID("parent", parent); err != nil {
		return nil, "", err
	}
	return p, name, nil
}

func parseNewTask(args []string) (models.Mutation, string, error) {
	var (
		project, due string
		priority     int
	)
	content, err := parseArgs("add task", args, []string{"-project", "-priority", "-due"}, func(fs *flag.FlagSet) {
		fs.StringVar(&project, "project", "", "project id")
		fs.IntVar(&priority, "priority", 0, "priority from 1 (normal) to 4 (urgent)")
		fs.StringVar(&due, "due", "", "due date, e.g. \"tomorrow 5pm\"")
	})
	if err != nil {
		return nil, "", err
	}

	it := models.NewItem{Content: content}
	if it.ProjectID, err = parseID("project", project); err != nil {
		return nil, "", err
	}
	if priority != 0 {
		it.Priority = &priority
	}
	if due != "" {
		it.Due = &models.DueInput{String: due}
	}
	return it, content, nil
}

func parseNewLabel(args []string) (models.Mutation, string, error) {
	var color string
	name, err := parseArgs("add label", args, []string{"-color"}, func(fs *flag.FlagSet) {
		fs.StringVar(&color, "color", "", "color name or code")
	})
	if err != nil {
		return nil, "", err
	}

	l := models.NewLabel{Name: name}
	if l.Color, err = parseColor(color); err != nil {
		return nil, "", err
	}
	return l, name, nil
}
