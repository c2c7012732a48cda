package emitter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoc_PreservesInsertionOrder(t *testing.T) {
	d := newDoc()
	d.set("b", 1)
	d.set("a", 2)
	d.set("c", 3)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2,"c":3}`, string(raw))
}

func TestDoc_OverwriteKeepsOriginalPosition(t *testing.T) {
	d := newDoc()
	d.set("a", 1)
	d.set("b", 2)
	d.set("a", 99)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"a":99,"b":2}`, string(raw))
}

func TestDoc_SetIf(t *testing.T) {
	d := newDoc()
	d.setIf(false, "skip", 1)
	d.setIf(true, "keep", 2)
	assert.False(t, d.has("skip"))
	assert.True(t, d.has("keep"))
	assert.Equal(t, 1, d.len())
}
