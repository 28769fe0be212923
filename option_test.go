package bale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpt_Unmarshal(t *testing.T) {
	var payload struct {
		A Opt[bool] `json:"a"`
		B Opt[bool] `json:"b"`
		C Opt[bool] `json:"c"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"b": null, "c": false}`), &payload))

	assert.True(t, payload.A.Missing())
	assert.False(t, payload.A.IsNull())
	_, ok := payload.A.Get()
	assert.False(t, ok)

	assert.True(t, payload.B.IsNull())
	assert.False(t, payload.B.Missing())
	_, ok = payload.B.Get()
	assert.False(t, ok)

	assert.False(t, payload.C.Missing())
	assert.False(t, payload.C.IsNull())
	value, ok := payload.C.Get()
	assert.True(t, ok)
	assert.False(t, value)
}

func TestOpt_Marshal(t *testing.T) {
	payload := struct {
		A Opt[string] `json:"a"`
		B Opt[string] `json:"b"`
		C Opt[string] `json:"c"`
	}{
		B: Null[string](),
		C: Some("value"),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"b":null,"c":"value"}`, string(data))
}

func TestOpt_Or(t *testing.T) {
	assert.Equal(t, "fallback", Opt[string]{}.Or("fallback"))
	assert.Equal(t, "fallback", Null[string]().Or("fallback"))
	assert.Equal(t, "value", Some("value").Or("fallback"))
}

func TestOpt_Comparable(t *testing.T) {
	assert.Equal(t, Some(int64(1)), Some(int64(1)))
	assert.NotEqual(t, Some(false), Null[bool]())
	assert.NotEqual(t, Null[bool](), Opt[bool]{})
}
