package command

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func TestNewCommand_Deterministic(t *testing.T) {
	b := NewBatcher(&seqIDs{})

	cmd, err := b.NewCommand(models.NewProject{Name: "Work"}, "")
	require.NoError(t, err)
	assert.Equal(t, "project_add", cmd.Type)
	assert.Equal(t, "id-1", cmd.TempID)
	assert.Equal(t, "id-2", cmd.UUID)
	assert.Equal(t, models.KindProjects, cmd.Kind())
	assert.JSONEq(t, `{"name":"Work"}`, string(cmd.Args))

	cmd, err = b.NewCommand(models.NewProject{Name: "Sub", ParentID: models.RefTemp("parent")}, "child")
	require.NoError(t, err)
	assert.Equal(t, "child", cmd.TempID)
	assert.Equal(t, "id-3", cmd.UUID)

	out, err := json.Marshal(cmd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"project_add","args":{"name":"Sub","parent_id":"parent"},"uuid":"id-3","temp_id":"child"}`, string(out))
}

func TestNewCommand_RandomUUIDsAreDistinct(t *testing.T) {
	b := NewBatcher(nil)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		cmd, err := b.NewCommand(models.NewLabel{Name: fmt.Sprintf("l%d", i)}, "")
		require.NoError(t, err)

		u, err := uuid.Parse(cmd.UUID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())

		require.False(t, seen[cmd.UUID], "uuid reused")
		seen[cmd.UUID] = true
	}
}

func TestNewCommand_InvalidMutation(t *testing.T) {
	ids := &seqIDs{}
	b := NewBatcher(ids)

	_, err := b.NewCommand(models.NewItem{}, "")
	require.ErrorIs(t, err, models.ErrInvalidMutation)
	assert.Equal(t, 0, ids.n, "no identifiers drawn for a rejected mutation")
}

func TestBatch_OrderAndTempIDs(t *testing.T) {
	b := NewBatcher(&seqIDs{}).NewBatch()

	parent, err := b.Add(models.NewProject{Name: "Parent"}, "p")
	require.NoError(t, err)
	_, err = b.Add(models.NewProject{Name: "Child", ParentID: models.RefTemp(parent.TempID)}, "")
	require.NoError(t, err)
	_, err = b.Add(models.NewItem{Content: "task", ProjectID: models.RefTemp("p")}, "")
	require.NoError(t, err)

	_, err = b.Add(models.NewLabel{Name: "dup"}, "p")
	require.ErrorIs(t, err, ErrDuplicateTempID)

	cmds := b.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"project_add", "project_add", "item_add"}, []string{cmds[0].Type, cmds[1].Type, cmds[2].Type})
	assert.Equal(t, []models.Kind{models.KindProjects, models.KindItems}, b.Kinds())

	err = b.Append(cmds[0])
	require.ErrorIs(t, err, ErrDuplicateTempID)
}
