package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize(t *testing.T) {
	t.Run("missing and nil both render as null", func(t *testing.T) {
		assert.Equal(t, Missing, Serialize(nil, false))
		assert.Equal(t, Missing, Serialize(nil, true))
		assert.Equal(t, Serialize(nil, false), Serialize(nil, true))
	})

	t.Run("string one and number one are not equal", func(t *testing.T) {
		assert.NotEqual(t, Serialize("1", true), Serialize(1, true))
		assert.Equal(t, `"1"`, Serialize("1", true))
		assert.Equal(t, `1`, Serialize(1, true))
	})

	t.Run("casing differences survive serialization", func(t *testing.T) {
		assert.NotEqual(t, Serialize("Integer", true), Serialize("integer", true))
	})

	t.Run("bools", func(t *testing.T) {
		assert.Equal(t, "true", Serialize(true, true))
		assert.Equal(t, "false", Serialize(false, true))
	})

	t.Run("maps serialize with stable key order", func(t *testing.T) {
		a := map[string]any{"b": 2, "a": 1}
		b := map[string]any{"a": 1, "b": 2}
		assert.Equal(t, Serialize(a, true), Serialize(b, true))
	})
}

func TestAllEqual(t *testing.T) {
	assert.True(t, AllEqual(nil))
	assert.True(t, AllEqual([]string{"x"}))
	assert.True(t, AllEqual([]string{"x", "x", "x"}))
	assert.False(t, AllEqual([]string{"x", "y", "x"}))
}

func TestUnionKeys(t *testing.T) {
	bags := []map[string]any{
		{"name": "Priority", "type": "integer", "url": "http://a"},
		{"name": "Priority", "required": true, "url": "http://b"},
	}

	keys := UnionKeys(bags, []string{"url"})
	assert.Equal(t, []string{"name", "required", "type"}, keys)
}
