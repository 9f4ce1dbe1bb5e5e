package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef(t *testing.T) {
	id := RefID(5)
	v, ok := id.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)
	_, ok = id.TempID()
	assert.False(t, ok)

	tmp := RefTemp("abc")
	s, ok := tmp.TempID()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)
	_, ok = tmp.ID()
	assert.False(t, ok)

	assert.True(t, Ref{}.IsZero())
	assert.Equal(t, RefID(42), ParseRef("42"))
	assert.Equal(t, RefTemp("new-parent"), ParseRef("new-parent"))
}

func TestRef_JSON(t *testing.T) {
	var got struct {
		A Ref `json:"a"`
		B Ref `json:"b"`
		C Ref `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"tmp","c":null}`), &got))
	assert.Equal(t, RefID(12), got.A)
	assert.Equal(t, RefTemp("tmp"), got.B)
	assert.True(t, got.C.IsZero())

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":"tmp","c":null}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"a":true}`), &got))
}
