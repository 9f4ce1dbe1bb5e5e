package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, b []byte, err error) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return b, err }
	t.Cleanup(func() { readPassword = old })
}

func TestGetToken(t *testing.T) {
	stubPassword(t, []byte("  0123abcd \n"), nil)

	var out bytes.Buffer
	tok, err := GetToken(&out, 0)
	require.NoError(t, err)
	assert.Equal(t, "0123abcd", tok)
	assert.Contains(t, out.String(), "Todoist API token:")
}

func TestGetToken_Empty(t *testing.T) {
	stubPassword(t, []byte("   "), nil)

	var out bytes.Buffer
	_, err := GetToken(&out, 0)
	require.ErrorIs(t, err, errEmptyInput)
}

func TestGetToken_Error(t *testing.T) {
	boom := errors.New("boom")
	stubPassword(t, nil, boom)

	var out bytes.Buffer
	_, err := GetToken(&out, 0)
	require.ErrorIs(t, err, boom)
}
