package planner

import (
	"testing"

	"ants/game"

	"github.com/stretchr/testify/require"
)

func TestEggWeight(t *testing.T) {
	t.Run("crystals over eggs times bases", func(t *testing.T) {
		cells := []cellSpec{{mine: 1}, {typ: game.Egg, res: 10}, {typ: game.Crystal, res: 40}, {mine: 1}}
		ts := newTestState(t, cells, path(4), []int{0, 3}, []int{})

		require.InDelta(t, 8.0, EggWeight(ts), 1e-9, "Weight should be 40/10*2")
	})

	t.Run("no eggs left", func(t *testing.T) {
		cells := []cellSpec{{mine: 1}, {typ: game.Crystal, res: 40}}
		ts := newTestState(t, cells, path(2), []int{0}, []int{})

		require.Equal(t, 0.0, EggWeight(ts), "Weight should be 0 without eggs")
	})
}

func TestValuate(t *testing.T) {
	t.Run("scores resources by kind", func(t *testing.T) {
		cells := []cellSpec{{mine: 2}, {typ: game.Egg, res: 5}, {typ: game.Crystal, res: 20}, {theirs: 2}, {typ: game.Crystal}}
		ts := newTestState(t, cells, path(5), []int{0}, []int{3})

		targets := Valuate(ts)

		require.Equal(t, []int{1, 2}, targets, "Depleted and empty cells are not targets")
		require.InDelta(t, 5*4.0, ts.Value[1], 1e-9, "Egg value should be resources times egg weight")
		require.InDelta(t, 20.0, ts.Value[2], 1e-9, "Crystal value should be its resources")
		require.Equal(t, 0.0, ts.Value[4], "Depleted cell should keep a zero value")
	})

	t.Run("eggs are dropped once winning", func(t *testing.T) {
		cells := []cellSpec{{mine: 30}, {typ: game.Egg, res: 5}, {typ: game.Crystal, res: 20}, {theirs: 2}}
		ts := newTestState(t, cells, path(4), []int{0}, []int{3})

		require.Equal(t, 10, ScoreToWin(ts), "Score to win should be half of what is left")
		require.True(t, Winning(ts), "30 ants should cover the score to win")
		require.Equal(t, []int{2}, Valuate(ts), "Only crystals should remain targets")
		require.Equal(t, 0.0, ts.Value[1], "Egg should not be valued")
	})

	t.Run("scores count towards the score to win", func(t *testing.T) {
		cells := []cellSpec{{mine: 1}, {typ: game.Egg, res: 5}, {typ: game.Crystal, res: 20}, {theirs: 2}}
		m := game.NewMap(len(cells))
		for _, c := range cells {
			m.AddCell(c.typ, c.res)
		}
		for _, e := range path(4) {
			m.AddBorder(e[0], e[1])
		}
		ts := game.NewTurnState(m, game.NewDistances(m), [game.PlayerSize][]int{{0}, {3}})
		require.NoError(t, ts.Update([game.PlayerSize]int{12, 4}, updatesOf(cells)))

		require.Equal(t, 18, ScoreToWin(ts), "Score to win should be (12+4+20)/2")
		require.False(t, Winning(ts), "12 points and 1 ant should not reach 18")
	})
}
