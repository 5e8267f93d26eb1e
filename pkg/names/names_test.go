package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortCaseInsensitive(t *testing.T) {
	t.Run("orders ignoring case", func(t *testing.T) {
		ss := []string{"task", "Bug", "Epic", "bug"}
		SortCaseInsensitive(ss)
		assert.Equal(t, []string{"Bug", "bug", "Epic", "task"}, ss)
	})

	t.Run("deterministic on repeated runs", func(t *testing.T) {
		a := []string{"b", "B", "a", "A"}
		b := []string{"A", "a", "B", "b"}
		SortCaseInsensitive(a)
		SortCaseInsensitive(b)
		assert.Equal(t, a, b)
	})
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"User Story": 1, "bug": 2, "Epic": 3}
	assert.Equal(t, []string{"bug", "Epic", "User Story"}, SortedKeys(m))
}

func TestSortBy(t *testing.T) {
	type item struct{ name string }
	items := []item{{"requirement"}, {"Task"}, {"epic"}}
	SortBy(items, func(i item) string { return i.name })
	assert.Equal(t, []item{{"epic"}, {"requirement"}, {"Task"}}, items)
}
