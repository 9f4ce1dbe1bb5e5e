package models

import (
	"encoding/json"
	"fmt"
)

// Mutation is a value that can be sent as a sync command.
//
// The set of implementations is closed: NewProject, NewItem, NewLabel,
// NewNote, NewProjectNote, NewFilter, NewReminder, ProjectUpdate, ItemUpdate
// and Delete. Full records such as Project never implement it, since they
// carry server-assigned fields that must not be echoed back.
type Mutation interface {
	mutation()
}

func (NewProject) mutation()     {}
func (NewItem) mutation()        {}
func (NewLabel) mutation()       {}
func (NewNote) mutation()        {}
func (NewProjectNote) mutation() {}
func (NewFilter) mutation()      {}
func (NewReminder) mutation()    {}
func (ProjectUpdate) mutation()  {}
func (ItemUpdate) mutation()     {}
func (Delete) mutation()         {}

// Delete removes the object referenced by ID from the collection Kind.
type Delete struct {
	Kind Kind `json:"-" validate:"required"`
	ID   Ref  `json:"id" validate:"required"`
}

// KindOf returns the collection a mutation targets.
func KindOf(m Mutation) Kind {
	switch v := m.(type) {
	case NewProject, ProjectUpdate:
		return KindProjects
	case NewItem, ItemUpdate:
		return KindItems
	case NewLabel:
		return KindLabels
	case NewNote:
		return KindNotes
	case NewProjectNote:
		return KindProjectNotes
	case NewFilter:
		return KindFilters
	case NewReminder:
		return KindReminders
	case Delete:
		return v.Kind
	default:
		panic(fmt.Sprintf("models: unexpected mutation %T", m))
	}
}

// CommandVerb returns the command type, e.g. "project_add".
func CommandVerb(m Mutation) string {
	prefix := KindOf(m).commandPrefix()
	switch m.(type) {
	case NewProject, NewItem, NewLabel, NewNote, NewProjectNote, NewFilter, NewReminder:
		return prefix + "_add"
	case ProjectUpdate, ItemUpdate:
		return prefix + "_update"
	case Delete:
		return prefix + "_delete"
	default:
		panic(fmt.Sprintf("models: unexpected mutation %T", m))
	}
}

// WirePayload validates m and renders the command args.
func WirePayload(m Mutation) (json.RawMessage, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding %s args: %w", CommandVerb(m), err)
	}
	return b, nil
}
