package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dothis/internal/client/models"
)

// Delete removes one object given as [kind, id].
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usagef("delete takes a resource and an id")
	}

	kind, err := models.ParseKind(args[0])
	if err != nil {
		return usagef("cannot delete %q", args[0])
	}
	ref, err := parseID("id", args[1])
	if err != nil {
		return err
	}

	batch := a.sync.NewBatch()
	cmd, err := batch.Add(models.Delete{Kind: kind, ID: ref}, "")
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

	_, err = fmt.Fprintf(a.out, "deleted %s %s\n", singular(kind), ref)
	return err
}
