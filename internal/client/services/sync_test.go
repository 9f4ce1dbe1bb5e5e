package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/dothis/internal/client/client"
	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fetchCall struct {
	token string
	kinds []models.Kind
}

type fakeClient struct {
	client.Client

	fetches []fetchCall
	applied [][]command.Command
	kinds   [][]models.Kind

	next    int
	fetchFn func(n int) (*models.Envelope, error)
	applyFn func(cmds []command.Command) (*models.Envelope, error)
}

func (f *fakeClient) Fetch(ctx context.Context, kinds []models.Kind) (*models.Envelope, error) {
	return f.FetchSince(ctx, "*", kinds)
}

func (f *fakeClient) FetchSince(_ context.Context, token string, kinds []models.Kind) (*models.Envelope, error) {
	f.fetches = append(f.fetches, fetchCall{token: token, kinds: kinds})
	f.next++
	if f.fetchFn != nil {
		return f.fetchFn(f.next)
	}
	return &models.Envelope{FullSync: token == "*", SyncToken: fmt.Sprintf("tok-%d", f.next)}, nil
}

func (f *fakeClient) Apply(_ context.Context, kinds []models.Kind, token string, cmds []command.Command) (*models.Envelope, error) {
	f.applied = append(f.applied, cmds)
	f.kinds = append(f.kinds, kinds)
	return f.applyFn(cmds)
}

func TestPull_FullThenDelta(t *testing.T) {
	fc := &fakeClient{}
	svc := NewSyncService(fc, nil, nil)
	ctx := context.Background()

	env, err := svc.Pull(ctx, models.KindProjects, models.KindItems)
	require.NoError(t, err)
	assert.True(t, env.FullSync)

	env, err = svc.Pull(ctx, models.KindItems, models.KindProjects)
	require.NoError(t, err)
	assert.False(t, env.FullSync)

	_, err = svc.Pull(ctx, models.KindLabels)
	require.NoError(t, err)

	require.Len(t, fc.fetches, 3)
	assert.Equal(t, "*", fc.fetches[0].token)
	assert.Equal(t, "tok-1", fc.fetches[1].token)
	assert.Equal(t, "*", fc.fetches[2].token, "a different collection set starts from a full sync")

	svc.Reset()
	_, err = svc.Pull(ctx, models.KindLabels)
	require.NoError(t, err)
	assert.Equal(t, "*", fc.fetches[3].token)
}

func TestSnapshot_AlwaysFullAndRemembersToken(t *testing.T) {
	fc := &fakeClient{}
	svc := NewSyncService(fc, nil, nil)
	ctx := context.Background()

	_, err := svc.Pull(ctx, models.KindItems)
	require.NoError(t, err)
	_, err = svc.Snapshot(ctx, models.KindItems)
	require.NoError(t, err)
	_, err = svc.Pull(ctx, models.KindItems)
	require.NoError(t, err)

	require.Len(t, fc.fetches, 3)
	assert.Equal(t, "*", fc.fetches[0].token)
	assert.Equal(t, "*", fc.fetches[1].token)
	assert.Equal(t, "tok-2", fc.fetches[2].token)
}

func TestPull_ErrorKeepsToken(t *testing.T) {
	boom := &client.TransportError{Op: "fetch", Err: errors.New("connection reset")}
	fc := &fakeClient{fetchFn: func(n int) (*models.Envelope, error) {
		if n == 2 {
			return nil, boom
		}
		return &models.Envelope{SyncToken: fmt.Sprintf("tok-%d", n)}, nil
	}}
	svc := NewSyncService(fc, nil, nil)
	ctx := context.Background()

	_, err := svc.Pull(ctx, models.KindItems)
	require.NoError(t, err)

	_, err = svc.Pull(ctx, models.KindItems)
	require.ErrorIs(t, err, client.ErrTransport)

	_, err = svc.Pull(ctx, models.KindItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", fc.fetches[2].token)
}

func TestPush_ResolvesTempIDsAndFailures(t *testing.T) {
	fc := &fakeClient{applyFn: func(cmds []command.Command) (*models.Envelope, error) {
		return &models.Envelope{
			TempIDMapping: map[string]int64{cmds[0].TempID: 42},
			SyncToken:     "after",
			SyncStatus: map[string]models.CommandStatus{
				cmds[0].UUID: {OK: true},
				cmds[1].UUID: {ErrorCode: 20, Error: "Project not found"},
			},
		}, nil
	}}
	svc := NewSyncService(fc, &seqIDs{}, nil)

	batch := svc.NewBatch()
	project, err := batch.Add(models.NewProject{Name: "Work"}, "p1")
	require.NoError(t, err)
	task, err := batch.Add(models.NewItem{Content: "Plan", ProjectID: models.RefTemp("p1")}, "")
	require.NoError(t, err)

	res, err := svc.Push(context.Background(), batch)
	require.NoError(t, err)

	require.Len(t, fc.applied, 1)
	assert.Equal(t, []models.Kind{models.KindProjects, models.KindItems}, fc.kinds[0])
	assert.Equal(t, "project_add", fc.applied[0][0].Type)
	assert.Equal(t, "item_add", fc.applied[0][1].Type)

	id, ok := res.ID(project)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, res.Err(project))

	_, ok = res.ID(task)
	assert.False(t, ok)
	require.Error(t, res.Err(task))

	failed := res.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, task.UUID, failed[0].UUID)

	// a write does not advance the read token
	_, err = svc.Pull(context.Background(), models.KindProjects, models.KindItems)
	require.NoError(t, err)
	assert.Equal(t, "*", fc.fetches[0].token)
}

func TestPush_TransportErrorIsWrapped(t *testing.T) {
	fc := &fakeClient{applyFn: func([]command.Command) (*models.Envelope, error) {
		return nil, &client.MalformedResponseError{Op: "apply", StatusCode: 502}
	}}
	svc := NewSyncService(fc, &seqIDs{}, nil)

	batch := svc.NewBatch()
	_, err := batch.Add(models.NewLabel{Name: "home"}, "")
	require.NoError(t, err)

	_, err = svc.Push(context.Background(), batch)
	require.ErrorIs(t, err, client.ErrMalformedResponse)
}
