package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 4))
	assert.Equal(t, 2, Clamp(2, 4))
	assert.Equal(t, 4, Clamp(9, 4))
	assert.Equal(t, 0, Clamp(1, 0))
}

func TestInsert(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Equal(t, []string{"x", "a", "b", "c"}, Insert(items, 0, "x"))
	assert.Equal(t, []string{"a", "x", "b", "c"}, Insert(items, 1, "x"))
	assert.Equal(t, []string{"a", "b", "c", "x"}, Insert(items, 10, "x"))
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestRemove(t *testing.T) {
	items := []string{"a", "b", "c"}

	out, removed := Remove(items, 1)
	assert.Equal(t, []string{"a", "c"}, out)
	assert.Equal(t, "b", removed)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	out, removed = Remove(items, 7)
	assert.Equal(t, items, out)
	assert.Empty(t, removed)
}

func TestMove(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"forward", 0, 3, []int{1, 2, 3, 0, 4}},
		{"backward", 4, 1, []int{0, 4, 1, 2, 3}},
		{"same slot", 2, 2, []int{0, 1, 2, 3, 4}},
		{"past the end", 1, 99, []int{0, 2, 3, 4, 1}},
		{"bad source", 9, 0, []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Move(items, tt.from, tt.to))
		})
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, items)
}

func TestIndexOf(t *testing.T) {
	items := []string{"a", "b"}
	assert.Equal(t, 1, IndexOf(items, func(s string) bool { return s == "b" }))
	assert.Equal(t, -1, IndexOf(items, func(s string) bool { return s == "z" }))
}
