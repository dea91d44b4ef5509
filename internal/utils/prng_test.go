// internal/utils/prng_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(123)
	b := NewPRNGService(123)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestIntn_NonPositive(t *testing.T) {
	s := NewPRNGService(1)
	require.Equal(t, 0, s.Intn(0))
	require.Equal(t, 0, s.Intn(-5))
}

func TestIntRange_Inclusive(t *testing.T) {
	s := NewPRNGService(2)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v := s.IntRange(-1, 1)
		require.GreaterOrEqual(t, v, -1)
		require.LessOrEqual(t, v, 1)
		seen[v] = true
	}
	require.True(t, seen[-1] && seen[0] && seen[1])

	require.Equal(t, 4, s.IntRange(4, 4))
	require.Equal(t, 4, s.IntRange(4, 2))
}

func TestChance_Extremes(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 50; i++ {
		require.False(t, s.Chance(0))
		require.True(t, s.Chance(1))
	}
}

func TestPick(t *testing.T) {
	s := NewPRNGService(4)
	require.Equal(t, "", Pick(s, []string{}))
	require.Equal(t, 7, Pick(s, []int{7}))

	items := []string{"a", "b", "c"}
	for i := 0; i < 30; i++ {
		require.Contains(t, items, Pick(s, items))
	}
}
