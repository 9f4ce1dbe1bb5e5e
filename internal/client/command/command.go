// Package command turns mutations into sync commands.
//
// Every command carries a uuid that lets the server deduplicate a retried
// request, and a temp_id that later commands in the same batch can use to
// reference the object before it has a server id. Identifiers come from an
// IDSource passed to NewBatcher, so tests can make them deterministic.
//
// Retrying is the caller's business: resend the same Command values to keep
// their uuids; building a new command always draws a new uuid.
package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/google/uuid"
)

var ErrDuplicateTempID = errors.New("duplicate temp_id in batch")

// Command is one entry of the commands parameter.
type Command struct {
	Type   string          `json:"type"`
	Args   json.RawMessage `json:"args"`
	UUID   string          `json:"uuid"`
	TempID string          `json:"temp_id"`

	kind models.Kind
}

// Kind is the collection the command targets.
func (c Command) Kind() models.Kind { return c.kind }

// IDSource produces identifiers for commands.
type IDSource interface {
	NewID() string
}

// RandomIDs draws version 4 UUIDs.
type RandomIDs struct{}

func (RandomIDs) NewID() string { return uuid.NewString() }

// Batcher builds commands with identifiers from its IDSource.
type Batcher struct {
	ids IDSource
}

// NewBatcher returns a Batcher drawing from ids, or from RandomIDs when ids is nil.
func NewBatcher(ids IDSource) *Batcher {
	if ids == nil {
		ids = RandomIDs{}
	}
	return &Batcher{ids: ids}
}

// NewCommand wraps m in a command with a fresh uuid. An empty tempID is
// replaced by a generated one; pass an explicit tempID when a later command
// in the batch must reference the object created by this one.
func (b *Batcher) NewCommand(m models.Mutation, tempID string) (Command, error) {
	args, err := models.WirePayload(m)
	if err != nil {
		return Command{}, err
	}

	if tempID == "" {
		tempID = b.ids.NewID()
	}

	return Command{
		Type:   models.CommandVerb(m),
		Args:   args,
		UUID:   b.ids.NewID(),
		TempID: tempID,
		kind:   models.KindOf(m),
	}, nil
}

// Batch is an ordered list of commands with unique temp_ids.
type Batch struct {
	batcher  *Batcher
	commands []Command
	tempIDs  map[string]struct{}
}

// NewBatch starts an empty batch.
func (b *Batcher) NewBatch() *Batch {
	return &Batch{batcher: b, tempIDs: make(map[string]struct{})}
}

// Add appends a command for m and returns it so its temp_id and uuid can be kept.
func (b *Batch) Add(m models.Mutation, tempID string) (Command, error) {
	if _, dup := b.tempIDs[tempID]; dup && tempID != "" {
		return Command{}, fmt.Errorf("%w: %q", ErrDuplicateTempID, tempID)
	}

	cmd, err := b.batcher.NewCommand(m, tempID)
	if err != nil {
		return Command{}, err
	}
	if err := b.Append(cmd); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// Append adds an already built command, e.g. one being retried.
func (b *Batch) Append(cmd Command) error {
	if _, dup := b.tempIDs[cmd.TempID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateTempID, cmd.TempID)
	}
	b.tempIDs[cmd.TempID] = struct{}{}
	b.commands = append(b.commands, cmd)
	return nil
}

// Commands returns the commands in insertion order.
func (b *Batch) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Kinds returns the collections touched by the batch, first occurrence first.
func (b *Batch) Kinds() []models.Kind {
	seen := make(map[models.Kind]bool)
	var out []models.Kind
	for _, c := range b.commands {
		if !seen[c.kind] {
			seen[c.kind] = true
			out = append(out, c.kind)
		}
	}
	return out
}

func (b *Batch) Len() int { return len(b.commands) }
