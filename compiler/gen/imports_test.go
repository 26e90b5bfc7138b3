package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementList(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		l := NewStatementList("c", "a", "b")
		assert.Equal(t, []string{"c", "a", "b"}, l.List())
	})

	t.Run("deduplicates by exact string equality", func(t *testing.T) {
		l := NewStatementList("a", "b")
		l.Add("a", "c", "b")
		assert.Equal(t, []string{"a", "b", "c"}, l.List())
		assert.Equal(t, 3, l.Len())
	})

	t.Run("first occurrence decides position", func(t *testing.T) {
		l := NewStatementList()
		l.Add("x")
		l.Add("y")
		l.Add("x")
		assert.Equal(t, []string{"x", "y"}, l.List())
	})

	t.Run("contains", func(t *testing.T) {
		l := NewStatementList("a")
		assert.True(t, l.Contains("a"))
		assert.False(t, l.Contains("b"))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		l := NewStatementList("a", "b")
		out := l.List()
		out[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, l.List())
	})

	t.Run("filter keeps order", func(t *testing.T) {
		l := NewStatementList("a", "drop", "b")
		got := l.Filter(func(s string) bool { return s != "drop" })
		assert.Equal(t, []string{"a", "b"}, got.List())
	})

	t.Run("empty list", func(t *testing.T) {
		l := NewStatementList()
		assert.Zero(t, l.Len())
		assert.Empty(t, l.List())
	})
}
