package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dothis/internal/client/codec"
	"github.com/dmitrijs2005/dothis/internal/client/models"
)

// List prints one collection as a table. resource accepts singular and plural
// names, and "tasks" for items.
func (a *App) List(ctx context.Context, resource string) error {
	kind, err := models.ParseKind(resource)
	if err != nil {
		return usagef("unknown resource %q", resource)
	}

	switch kind {
	case models.KindItems:
		return a.listTasks(ctx)
	case models.KindNotes:
		return a.listNotes(ctx)
	}

	env, err := a.sync.Snapshot(ctx, kind)
	if err != nil {
		return err
	}
	a.warnRecordErrors(ctx, env)

	switch kind {
	case models.KindProjects:
		if env.Projects == nil {
			return ErrNoResources
		}
		return a.printProjects(env.Projects)
	case models.KindLabels:
		if env.Labels == nil {
			return ErrNoResources
		}
		return a.printLabels(env.Labels)
	case models.KindProjectNotes:
		if env.ProjectNotes == nil {
			return ErrNoResources
		}
		return a.printProjectNotes(env.ProjectNotes)
	case models.KindFilters:
		if env.Filters == nil {
			return ErrNoResources
		}
		return a.printFilters(env.Filters)
	case models.KindReminders:
		if env.Reminders == nil {
			return ErrNoResources
		}
		return a.printReminders(env.Reminders)
	default:
		return usagef("cannot list %s", kind)
	}
}

func (a *App) listTasks(ctx context.Context) error {
	env, err := a.sync.Snapshot(ctx, models.KindItems, models.KindProjects)
	if err != nil {
		return err
	}
	a.warnRecordErrors(ctx, env)
	if env.Items == nil || env.Projects == nil {
		return ErrNoResources
	}

	byProject := make(map[int64][]models.Item)
	for _, it := range env.Items {
		if it.IsDeleted || it.Checked {
			continue
		}
		byProject[it.ProjectID] = append(byProject[it.ProjectID], it)
	}

	var rows [][]string
	forest := models.NewProjectForest(env.Projects)
	forest.Walk(func(p models.Project, _ int) bool {
		for _, it := range byProject[p.ID] {
			rows = append(rows, []string{p.Name, it.DateAdded, dueString(it.Due), it.Content})
		}
		delete(byProject, p.ID)
		return true
	})
	for _, it := range env.Items {
		if _, orphan := byProject[it.ProjectID]; orphan && !bool(it.IsDeleted) && !bool(it.Checked) {
			rows = append(rows, []string{"", it.DateAdded, dueString(it.Due), it.Content})
		}
	}

	return a.printTable([]string{"Project", "Added", "Due", "Content"}, rows, nil)
}

func (a *App) listNotes(ctx context.Context) error {
	env, err := a.sync.Snapshot(ctx, models.KindNotes, models.KindItems)
	if err != nil {
		return err
	}
	a.warnRecordErrors(ctx, env)
	if env.Notes == nil {
		return ErrNoResources
	}

	content := make(map[int64]string, len(env.Items))
	for _, it := range env.Items {
		content[it.ID] = it.Content
	}

	rows := make([][]string, 0, len(env.Notes))
	for _, n := range env.Notes {
		if n.IsDeleted {
			continue
		}
		body := n.Content
		if n.FileAttachment != nil {
			body += " [" + n.FileAttachment.FileName + "]"
		}
		rows = append(rows, []string{orDash(content[n.ItemID]), n.Posted, body})
	}
	return a.printTable([]string{"Task", "Posted", "Content"}, rows, nil)
}

func (a *App) printProjects(projects []models.Project) error {
	var (
		rows   [][]string
		colors []codec.Color
	)
	forest := models.NewProjectForest(projects)
	forest.Walk(func(p models.Project, depth int) bool {
		if p.IsDeleted || p.IsArchived {
			return true
		}
		parent := ""
		if pp, ok := forest.Parent(p.ID); ok {
			parent = pp.Name
		}
		name := strings.Repeat("  ", depth) + p.Name
		if p.IsFavorite {
			name += " *"
		}
		rows = append(rows, []string{idString(p.ID), name, parent, p.Color.Name()})
		colors = append(colors, p.Color)
		return true
	})
	return a.printTable([]string{"ID", "Project", "Parent", "Color"}, rows, colorColumn(1, colors))
}

func (a *App) printLabels(labels []models.Label) error {
	var (
		rows   [][]string
		colors []codec.Color
	)
	for _, l := range labels {
		if l.IsDeleted {
			continue
		}
		rows = append(rows, []string{idString(l.ID), l.Name, yesNo(l.IsFavorite), l.Color.Name()})
		colors = append(colors, l.Color)
	}
	return a.printTable([]string{"ID", "Name", "Favorite", "Color"}, rows, colorColumn(1, colors))
}

func (a *App) printProjectNotes(notes []models.ProjectNote) error {
	var rows [][]string
	for _, n := range notes {
		if n.IsDeleted {
			continue
		}
		rows = append(rows, []string{idString(n.ProjectID), n.Posted, n.Content})
	}
	return a.printTable([]string{"Project", "Posted", "Content"}, rows, nil)
}

func (a *App) printFilters(filters []models.Filter) error {
	var (
		rows   [][]string
		colors []codec.Color
	)
	for _, f := range filters {
		if f.IsDeleted {
			continue
		}
		rows = append(rows, []string{idString(f.ID), f.Name, f.Query})
		colors = append(colors, f.Color)
	}
	return a.printTable([]string{"ID", "Name", "Query"}, rows, colorColumn(1, colors))
}

func (a *App) printReminders(reminders []models.Reminder) error {
	var rows [][]string
	for _, r := range reminders {
		if r.IsDeleted {
			continue
		}
		when := dueString(r.Due)
		if r.MMOffset != nil {
			when = fmt.Sprintf("%d min before", *r.MMOffset)
		}
		rows = append(rows, []string{idString(r.ItemID), orDash(r.Type), orDash(r.Service), when})
	}
	return a.printTable([]string{"Task", "Type", "Service", "When"}, rows, nil)
}

func dueString(d *models.Due) string {
	if d == nil {
		return ""
	}
	if d.String != "" {
		return d.String
	}
	return d.Date
}
