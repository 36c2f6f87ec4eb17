package pyjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooks(t *testing.T) {
	assert.True(t, Looks("[1, 2]"))
	assert.True(t, Looks("  {'a': 1}"))
	assert.False(t, Looks("plain text"))
	assert.False(t, Looks("12.5"))
	assert.False(t, Looks(""))
}

func TestNormalize(t *testing.T) {
	t.Run("python repr", func(t *testing.T) {
		in := "{'a': None, 'b': True, 'c': False}"
		assert.Equal(t, `{"a": null, "b": true, "c": false}`, Normalize(in))
	})

	t.Run("idempotent on valid JSON", func(t *testing.T) {
		in := `{"a": null, "b": true}`
		assert.Equal(t, in, Normalize(in))
		assert.Equal(t, Normalize(in), Normalize(Normalize(in)))
	})

	t.Run("word boundaries protect embedded tokens", func(t *testing.T) {
		// NoneSuch 不应被替换
		assert.Equal(t, `{"k": "NoneSuch"}`, Normalize("{'k': 'NoneSuch'}"))
	})
}

func TestParse(t *testing.T) {
	t.Run("python list of objects", func(t *testing.T) {
		v, err := Parse("[{'itemName': '耳机', 'itemCount': 2}]")
		require.NoError(t, err)
		arr, ok := v.([]any)
		require.True(t, ok)
		require.Len(t, arr, 1)
		obj := arr[0].(map[string]any)
		assert.Equal(t, "耳机", obj["itemName"])
		assert.Equal(t, 2.0, obj["itemCount"])
	})

	t.Run("already valid JSON passes through", func(t *testing.T) {
		v, err := Parse(`{"a": 1}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1.0}, v)
	})

	t.Run("truncated payload fails cleanly", func(t *testing.T) {
		_, err := Parse("[1, 2,")
		assert.Error(t, err)
	})
}
