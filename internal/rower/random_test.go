package rower

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSourceBounds(t *testing.T) {
	src := NewRandomSource(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := src.IntRange(-2, 2)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
		seen[v] = true

		f := src.Float64Range(-1.5, 1.5)
		require.GreaterOrEqual(t, f, -1.5)
		require.LessOrEqual(t, f, 1.5)
	}
	require.Len(t, seen, 5)

	require.Equal(t, 4, src.IntRange(4, 4))
	require.Equal(t, 0.0, src.Float64Range(0, 0))
}

func TestRandomSourceSeeded(t *testing.T) {
	a, b := NewRandomSource(99), NewRandomSource(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntRange(-15, 15), b.IntRange(-15, 15))
		require.Equal(t, a.Float64Range(-2, 2), b.Float64Range(-2, 2))
	}
}
