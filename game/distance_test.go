package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// newRandomMap builds a sparse random graph where every cell has at most
// NeighborSize neighbors. Some cells may end up disconnected.
func newRandomMap(r *rand.Rand, n int) *Map {
	m := NewMap(n)
	for i := 0; i < n; i++ {
		m.AddCell(Empty, 0)
	}
	for i := 0; i < n*2; i++ {
		a, b := r.Intn(n), r.Intn(n)
		if len(m.Neighbors(a)) < NeighborSize && len(m.Neighbors(b)) < NeighborSize {
			m.AddBorder(a, b)
		}
	}
	return m
}

func TestNewDistances(t *testing.T) {
	t.Run("path graph distances", func(t *testing.T) {
		d := NewDistances(newLine(4))

		require.Equal(t, 0, d.Dist(2, 2), "Distance to self should be 0")
		require.Equal(t, 3, d.Dist(0, 3), "End to end distance should be 3")
		require.Equal(t, 1, d.Dist(2, 1), "Adjacent distance should be 1")
	})

	t.Run("disconnected cells keep infinity", func(t *testing.T) {
		m := newLine(3)
		m.AddCell(Empty, 0)
		d := NewDistances(m)

		require.Equal(t, Infinity, d.Dist(0, 3), "Unreachable cell should be at Infinity")
		require.False(t, d.Reachable(3, 1), "Unreachable cell should not be reachable")
		require.Equal(t, 0, d.Dist(3, 3), "Isolated cell should reach itself")
	})

	t.Run("shortcut is preferred", func(t *testing.T) {
		m := newLine(5)
		m.AddBorder(0, 4)
		d := NewDistances(m)

		require.Equal(t, 1, d.Dist(0, 4), "Direct border should win over the long way")
		require.Equal(t, 2, d.Dist(1, 4), "Path through the shortcut should be used")
	})

	t.Run("panics on empty map", func(t *testing.T) {
		require.Panics(t, func() {
			NewDistances(NewMap(0))
		}, "Should panic when the map has no cells")
	})
}

func TestDistancesProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		m := newRandomMap(r, 30)
		d := NewDistances(m)
		n := m.Size()

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(t, d.Dist(i, j), d.Dist(j, i), "Distance should be symmetric for %d,%d", i, j)
				if !d.Reachable(i, j) {
					continue
				}
				for k := 0; k < n; k++ {
					if d.Reachable(j, k) {
						require.LessOrEqual(t, d.Dist(i, k), d.Dist(i, j)+d.Dist(j, k),
							"Triangle inequality should hold for %d,%d,%d", i, j, k)
					}
				}
			}
			for _, nb := range m.Neighbors(i) {
				require.Equal(t, 1, d.Dist(i, nb), "Neighbors should be at distance 1")
			}
		}
	}
}
