// Package services contains application services for the dothis client.
// This file defines the sync session: delta reads that remember the last
// sync token and batched writes that resolve temp ids.
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/dothis/internal/client/client"
	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/dmitrijs2005/dothis/internal/logging"
)

// SyncService defines the sync operations used by the CLI.
//
// Contract:
//   - Snapshot: full snapshot of a set of collections.
//   - Pull: full snapshot on the first call for a set of collections, deltas afterwards.
//   - Push: send a batch of mutations in order; command failures are reported, not returned as errors.
//   - Reset: forget every remembered sync token.
//
// Sync tokens live in memory only.
type SyncService interface {
	Snapshot(ctx context.Context, kinds ...models.Kind) (*models.Envelope, error)
	Pull(ctx context.Context, kinds ...models.Kind) (*models.Envelope, error)
	Push(ctx context.Context, batch *command.Batch) (*PushResult, error)
	NewBatch() *command.Batch
	Reset()
}

// PushResult is the outcome of one write.
type PushResult struct {
	Envelope *models.Envelope
	Commands []command.Command
}

// ID returns the server id of the object created by cmd.
func (r *PushResult) ID(cmd command.Command) (int64, bool) {
	return r.Envelope.ResolveTempID(cmd.TempID)
}

// Err returns the server's refusal of cmd, or nil.
func (r *PushResult) Err(cmd command.Command) error {
	if ce := r.Envelope.CommandError(cmd.UUID); ce != nil {
		return ce
	}
	return nil
}

// Failed lists the commands the server refused, in batch order.
func (r *PushResult) Failed() []*models.CommandError {
	var out []*models.CommandError
	for _, cmd := range r.Commands {
		if ce := r.Envelope.CommandError(cmd.UUID); ce != nil {
			out = append(out, ce)
		}
	}
	return out
}

type syncService struct {
	client  client.Client
	batcher *command.Batcher
	log     logging.Logger

	mu     sync.Mutex
	tokens map[string]string
}

// NewSyncService constructs a SyncService over c. ids may be nil.
func NewSyncService(c client.Client, ids command.IDSource, log logging.Logger) SyncService {
	if log == nil {
		log = logging.Discard()
	}
	return &syncService{
		client:  c,
		batcher: command.NewBatcher(ids),
		log:     log,
		tokens:  make(map[string]string),
	}
}

// tokenKey identifies a set of collections independent of order. A token
// obtained for one set says nothing about the others.
func tokenKey(kinds []models.Kind) string {
	names := models.ResourceNames(kinds)
	slices.Sort(names)
	return strings.Join(slices.Compact(names), ",")
}

func (s *syncService) Snapshot(ctx context.Context, kinds ...models.Kind) (*models.Envelope, error) {
	return s.pull(ctx, "", kinds)
}

func (s *syncService) Pull(ctx context.Context, kinds ...models.Kind) (*models.Envelope, error) {
	s.mu.Lock()
	token := s.tokens[tokenKey(kinds)]
	s.mu.Unlock()

	return s.pull(ctx, token, kinds)
}

func (s *syncService) pull(ctx context.Context, token string, kinds []models.Kind) (*models.Envelope, error) {
	key := tokenKey(kinds)

	var (
		env *models.Envelope
		err error
	)
	if token == "" {
		env, err = s.client.Fetch(ctx, kinds)
	} else {
		env, err = s.client.FetchSince(ctx, token, kinds)
	}
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", key, err)
	}

	s.mu.Lock()
	s.tokens[key] = env.SyncToken
	s.mu.Unlock()

	s.log.Debug(ctx, "pulled", "resource_types", key, "full_sync", env.FullSync)
	return env, nil
}

func (s *syncService) NewBatch() *command.Batch {
	return s.batcher.NewBatch()
}

// Push sends the batch as an unconditional write. The write's sync token
// is not remembered, since it only covers the collections the batch touched.
func (s *syncService) Push(ctx context.Context, batch *command.Batch) (*PushResult, error) {
	cmds := batch.Commands()
	env, err := s.client.Apply(ctx, batch.Kinds(), "", cmds)
	if err != nil {
		return nil, fmt.Errorf("push: %w", err)
	}

	res := &PushResult{Envelope: env, Commands: cmds}
	s.log.Debug(ctx, "pushed", "commands", len(cmds), "failed", len(res.Failed()))
	return res, nil
}

func (s *syncService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.tokens)
}
