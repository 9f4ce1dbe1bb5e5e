// Package models defines the synchronizable resources of the sync API, the
// creation/update/delete mutations accepted for them and the response
// envelope returned by every sync request.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a resource collection as the protocol spells it.
type Kind string

const (
	KindProjects     Kind = "projects"
	KindItems        Kind = "items"
	KindLabels       Kind = "labels"
	KindNotes        Kind = "notes"
	KindProjectNotes Kind = "project_notes"
	KindFilters      Kind = "filters"
	KindReminders    Kind = "reminders"
)

var ErrUnknownKind = errors.New("unknown resource type")

// Kinds lists every modeled collection in envelope order.
func Kinds() []Kind {
	return []Kind{KindProjects, KindItems, KindNotes, KindProjectNotes, KindLabels, KindFilters, KindReminders}
}

// ParseKind accepts a collection name, its singular form and "task"/"tasks" for items.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "projects", "project":
		return KindProjects, nil
	case "items", "item", "tasks", "task":
		return KindItems, nil
	case "labels", "label":
		return KindLabels, nil
	case "notes", "note":
		return KindNotes, nil
	case "project_notes", "project_note":
		return KindProjectNotes, nil
	case "filters", "filter":
		return KindFilters, nil
	case "reminders", "reminder":
		return KindReminders, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ResourceName returns the collection name used in resource_types.
func (k Kind) ResourceName() string {
	return string(k)
}

// Valid reports whether k is one of the modeled collections.
func (k Kind) Valid() bool {
	switch k {
	case KindProjects, KindItems, KindLabels, KindNotes, KindProjectNotes, KindFilters, KindReminders:
		return true
	}
	return false
}

// commandPrefix is the object name used in command verbs, e.g. "item" in "item_add".
func (k Kind) commandPrefix() string {
	switch k {
	case KindProjects:
		return "project"
	case KindItems:
		return "item"
	case KindLabels:
		return "label"
	case KindNotes, KindProjectNotes:
		return "note"
	case KindFilters:
		return "filter"
	case KindReminders:
		return "reminder"
	default:
		panic(fmt.Sprintf("models: no command prefix for %q", string(k)))
	}
}

// ResourceNames converts kinds to their wire names, preserving order.
func ResourceNames(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.ResourceName()
	}
	return out
}
