package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOne_Empty(t *testing.T) {
	got, ok := One(Fixed(0), []string(nil))
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestOne_Fixed(t *testing.T) {
	items := []string{"a", "b", "c"}

	got, ok := One(Fixed(1), items)
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	got, _ = One(Fixed(10), items)
	assert.Equal(t, "c", got, "index clamps to the last candidate")

	got, _ = One(Fixed(-3), items)
	assert.Equal(t, "a", got)
}

func TestSequence(t *testing.T) {
	s := &Sequence{Indices: []int{2, 0, 1}}
	items := []int{10, 20, 30}

	var got []int
	for range 4 {
		v, ok := One(s, items)
		assert.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{30, 10, 20, 20}, got)
}

func TestSeeded_Reproducible(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a, b := Seeded(42), Seeded(42)
	for range 20 {
		x, _ := One(a, items)
		y, _ := One(b, items)
		assert.Equal(t, x, y)
	}
}

func TestNew_StaysInRange(t *testing.T) {
	src := New()
	seen := make(map[int]bool)
	for range 500 {
		n := src.IntN(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}
