package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dothis/internal/client/models"
)

// Sync pulls every collection and prints how many records changed. The first
// call in a session is a full sync.
func (a *App) Sync(ctx context.Context) error {
	env, err := a.sync.Pull(ctx, models.Kinds()...)
	if err != nil {
		return err
	}
	a.warnRecordErrors(ctx, env)

	counts := []struct {
		kind models.Kind
		n    int
	}{
		{models.KindProjects, len(env.Projects)},
		{models.KindItems, len(env.Items)},
		{models.KindLabels, len(env.Labels)},
		{models.KindNotes, len(env.Notes)},
		{models.KindProjectNotes, len(env.ProjectNotes)},
		{models.KindFilters, len(env.Filters)},
		{models.KindReminders, len(env.Reminders)},
	}

	mode := "delta"
	if env.FullSync {
		mode = "full"
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{string(c.kind), fmt.Sprint(c.n)})
	}
	if _, err := fmt.Fprintf(a.out, "%s sync\n", mode); err != nil {
		return err
	}
	return a.printTable([]string{"Resource", "Changed"}, rows, nil)
}

// warnRecordErrors reports records the client skipped while decoding.
func (a *App) warnRecordErrors(ctx context.Context, env *models.Envelope) {
	for _, re := range env.RecordErrors {
		a.log.Warn(ctx, "skipped malformed record", "resource", string(re.Kind), "index", re.Index, "error", re.Err)
	}
}
