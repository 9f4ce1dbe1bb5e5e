// Package query assembles the parameters of a sync request.
//
// A Builder collects state for exactly one request and ends in one of two
// terminal calls: BuildRead or BuildWrite. Any call after that fails with
// ErrBuilderConsumed; start a new Builder for the next request.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
)

// FullSync is the sync token that requests a full snapshot.
const FullSync = "*"

var (
	ErrBuilderConsumed     = errors.New("query builder already used")
	ErrNoResourceTypes     = errors.New("no resource types requested")
	ErrNoCommands          = errors.New("write query without commands")
	ErrCommandsOnRead      = errors.New("read query cannot carry commands")
	ErrUnknownResourceType = errors.New("unknown resource type")
	ErrEmptyToken          = errors.New("empty api token")
)

// Query is a built request. Commands is empty for a read query.
type Query struct {
	Token         string
	SyncToken     string
	ResourceTypes []string
	Commands      []command.Command
}

// IsWrite reports whether q carries commands.
func (q *Query) IsWrite() bool { return len(q.Commands) > 0 }

// Values encodes q as request parameters. resource_types and commands are
// JSON arrays serialized into single string parameters; sync_token is
// omitted when empty.
func (q *Query) Values() (url.Values, error) {
	v := url.Values{}
	v.Set("token", q.Token)
	if q.SyncToken != "" {
		v.Set("sync_token", q.SyncToken)
	}

	rt, err := json.Marshal(q.ResourceTypes)
	if err != nil {
		return nil, fmt.Errorf("encoding resource_types: %w", err)
	}
	v.Set("resource_types", string(rt))

	if q.IsWrite() {
		cmds, err := json.Marshal(q.Commands)
		if err != nil {
			return nil, fmt.Errorf("encoding commands: %w", err)
		}
		v.Set("commands", string(cmds))
	}

	return v, nil
}

// Builder accumulates one request.
type Builder struct {
	token         string
	syncToken     string
	hasSyncToken  bool
	resourceTypes []string
	seen          map[string]bool
	commands      []command.Command
	tempIDs       map[string]bool
	err           error
	used          bool
}

// NewBuilder starts a request authenticated with token.
func NewBuilder(token string) *Builder {
	return &Builder{token: token, seen: make(map[string]bool), tempIDs: make(map[string]bool)}
}

// Get requests a collection. Repeated names are kept once, at their first position.
func (b *Builder) Get(kinds ...models.Kind) *Builder {
	if b.check() {
		return b
	}
	for _, k := range kinds {
		if !k.Valid() {
			b.err = fmt.Errorf("%w: %q", ErrUnknownResourceType, string(k))
			return b
		}
		b.addType(k.ResourceName())
	}
	return b
}

// GetNames is Get for collection names coming from callers that do not use Kind.
func (b *Builder) GetNames(names ...string) *Builder {
	kinds := make([]models.Kind, 0, len(names))
	for _, n := range names {
		kinds = append(kinds, models.Kind(n))
	}
	return b.Get(kinds...)
}

// SyncToken sets the delta marker. Reads default to FullSync; writes send none.
func (b *Builder) SyncToken(token string) *Builder {
	if b.check() {
		return b
	}
	b.syncToken = token
	b.hasSyncToken = true
	return b
}

// Add appends commands in order; the collection each one targets is requested too.
// A temp_id already used by an earlier command latches command.ErrDuplicateTempID.
func (b *Builder) Add(cmds ...command.Command) *Builder {
	if b.check() {
		return b
	}
	for _, c := range cmds {
		if c.TempID != "" {
			if b.tempIDs[c.TempID] {
				b.err = fmt.Errorf("%w: %q", command.ErrDuplicateTempID, c.TempID)
				return b
			}
			b.tempIDs[c.TempID] = true
		}
		b.commands = append(b.commands, c)
		if c.Kind() != "" {
			b.addType(c.Kind().ResourceName())
		}
	}
	return b
}

// BuildRead finishes a read query.
func (b *Builder) BuildRead() (*Query, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	if len(b.commands) > 0 {
		return nil, ErrCommandsOnRead
	}

	st := FullSync
	if b.hasSyncToken && b.syncToken != "" {
		st = b.syncToken
	}

	return &Query{
		Token:         b.token,
		SyncToken:     st,
		ResourceTypes: b.resourceTypes,
	}, nil
}

// BuildWrite finishes a write query.
func (b *Builder) BuildWrite() (*Query, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	if len(b.commands) == 0 {
		return nil, ErrNoCommands
	}

	return &Query{
		Token:         b.token,
		SyncToken:     b.syncToken,
		ResourceTypes: b.resourceTypes,
		Commands:      b.commands,
	}, nil
}

// check reports whether the builder can no longer accept input.
func (b *Builder) check() bool {
	if b.used && b.err == nil {
		b.err = ErrBuilderConsumed
	}
	return b.err != nil
}

func (b *Builder) finish() error {
	if b.used {
		return ErrBuilderConsumed
	}
	b.used = true

	switch {
	case b.err != nil:
		return b.err
	case b.token == "":
		return ErrEmptyToken
	case len(b.resourceTypes) == 0:
		return ErrNoResourceTypes
	}
	return nil
}

func (b *Builder) addType(name string) {
	if b.seen[name] {
		return
	}
	b.seen[name] = true
	b.resourceTypes = append(b.resourceTypes, name)
}
