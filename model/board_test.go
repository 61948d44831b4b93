package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-decay/rules"
)

func newTestBoard(t *testing.T, width, height, cyclesToDie int, seeds []Coord) *Board {
	t.Helper()
	board, err := NewBoard(width, height, cyclesToDie, Pattern{Name: "test", Cells: seeds})
	require.NoError(t, err)
	return board
}

func TestNeighborCountsSingleInteriorCell(t *testing.T) {
	board := newTestBoard(t, 5, 5, 3, []Coord{{X: 2, Y: 2}})

	board.UpdateLiveNeighborCounts()

	for index, cell := range board.Cells() {
		x, y := board.IndexToCoordinates(index)
		dx, dy := x-2, y-2

		switch {
		case dx == 0 && dy == 0:
			require.Equal(t, 0, cell.NeighborCount, "the live cell itself counts no neighbors")
		case dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1:
			require.Equal(t, 1, cell.NeighborCount, "neighbor at (%d,%d) should see 1", x, y)
		default:
			require.Equal(t, 0, cell.NeighborCount, "far cell at (%d,%d) should see 0", x, y)
		}
	}
}

func TestNeighborCountsCornerCell(t *testing.T) {
	board := newTestBoard(t, 4, 4, 3, []Coord{{X: 0, Y: 0}})

	require.NotPanics(t, func() { board.UpdateLiveNeighborCounts() })

	contributed := 0
	for _, cell := range board.Cells() {
		contributed += cell.NeighborCount
	}

	// A corner cell has only 3 in-bounds neighbors; nothing wraps.
	require.Equal(t, 3, contributed)
	require.Equal(t, 1, board.CellAt(1, 0).NeighborCount)
	require.Equal(t, 1, board.CellAt(0, 1).NeighborCount)
	require.Equal(t, 1, board.CellAt(1, 1).NeighborCount)
}

func TestBirthRule(t *testing.T) {
	// Three cells in a column: the middle row cells on either side see
	// exactly 3 live neighbors and should be born.
	board := newTestBoard(t, 5, 5, 3, []Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})

	board.Advance()

	require.Equal(t, rules.Alive, board.CellAt(1, 2).State)
	require.Equal(t, rules.Alive, board.CellAt(3, 2).State)
	// Cells with 2 live neighbors stay dead.
	require.Equal(t, rules.Dead, board.CellAt(1, 1).State)
	require.Equal(t, rules.Dead, board.CellAt(3, 3).State)
}

func TestBlockStillLifeRemainsStable(t *testing.T) {
	block := []Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	board := newTestBoard(t, 4, 4, 3, block)

	for tick := 1; tick <= 10; tick++ {
		board.Advance()

		alive, dying := board.CountCells()
		require.Equal(t, 4, alive, "block should remain alive after tick %d", tick)
		require.Equal(t, 0, dying, "no block cell should ever start dying")
		for _, coord := range block {
			require.Equal(t, rules.Alive, board.CellAt(coord.X, coord.Y).State)
		}
	}
}

func TestIsolatedCellDecaysToDead(t *testing.T) {
	board := newTestBoard(t, 5, 5, 2, []Coord{{X: 2, Y: 2}})

	// Tick 1: the lone cell starts dying with the full budget.
	board.Advance()
	require.Equal(t, rules.Dying, board.CellAt(2, 2).State)
	require.Equal(t, 2, board.CellAt(2, 2).CyclesLeft)

	// Ticks 2-3: the budget drains one cycle at a time.
	board.Advance()
	require.Equal(t, rules.Dying, board.CellAt(2, 2).State)
	require.Equal(t, 1, board.CellAt(2, 2).CyclesLeft)

	board.Advance()
	require.Equal(t, rules.Dying, board.CellAt(2, 2).State)
	require.Equal(t, 0, board.CellAt(2, 2).CyclesLeft)

	// Tick 4: the budget is exhausted.
	board.Advance()
	require.Equal(t, rules.Dead, board.CellAt(2, 2).State)
}

func TestDyingCellsDoNotFeedNeighborCounts(t *testing.T) {
	// The lone cell starts dying on the first tick; after that, none of
	// its neighbors should ever count it as alive.
	board := newTestBoard(t, 5, 5, 10, []Coord{{X: 2, Y: 2}})

	board.Advance()
	board.UpdateLiveNeighborCounts()

	for _, cell := range board.Cells() {
		require.Equal(t, 0, cell.NeighborCount)
	}
}

func TestGenerationCounter(t *testing.T) {
	board := newTestBoard(t, 4, 4, 3, nil)

	require.Equal(t, 0, board.GetGeneration())
	for i := 1; i <= 7; i++ {
		board.Advance()
		require.Equal(t, i, board.GetGeneration())
	}
}

func TestDeterminism(t *testing.T) {
	seeds := []Coord{{X: 12, Y: 10}, {X: 12, Y: 11}, {X: 10, Y: 11}, {X: 11, Y: 12}, {X: 12, Y: 12}}

	first := newTestBoard(t, 30, 30, 5, seeds)
	second := newTestBoard(t, 30, 30, 5, seeds)

	for tick := 1; tick <= 20; tick++ {
		first.Advance()
		second.Advance()
		require.Equal(t, first.GetBoardHash(), second.GetBoardHash(),
			"identical boards diverged at tick %d", tick)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	board := newTestBoard(t, 7, 3, 3, nil)

	for index := range board.Cells() {
		x, y := board.IndexToCoordinates(index)
		got, ok := board.coordinatesToIndex(x, y)
		require.True(t, ok)
		require.Equal(t, index, got)
	}

	for _, coord := range []Coord{{X: -1, Y: 0}, {X: 7, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}} {
		_, ok := board.coordinatesToIndex(coord.X, coord.Y)
		require.False(t, ok, "(%d,%d) should be off the grid", coord.X, coord.Y)
	}
}

func TestNewBoardRejectsOutOfBoundsSeed(t *testing.T) {
	_, err := NewBoard(5, 5, 3, Pattern{Name: "bad", Cells: []Coord{{X: 10, Y: 0}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "(10,0)")
	require.Contains(t, err.Error(), "bad")
}

func TestNewBoardRejectsInvalidDimensions(t *testing.T) {
	_, err := NewBoard(0, 5, 3, Pattern{})
	require.Error(t, err)

	_, err = NewBoard(5, 5, 0, Pattern{})
	require.Error(t, err)
}
