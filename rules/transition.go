package rules

// State is the life-cycle phase of a single cell.
type State uint8

const (
	// Dead cells are empty board positions.
	Dead State = iota
	// Alive cells count toward their neighbors' live totals.
	Alive
	// Dying cells are fading toward Dead unless rescued by exactly
	// three live neighbors.
	Dying
)

// Cell is one board position: its state, the decay cycles remaining
// while Dying, and the live-neighbor count cached for the current tick.
// NeighborCount is transient; it is recomputed in full every tick
// before the transition runs and carries no meaning between ticks.
type Cell struct {
	State         State
	CyclesLeft    int
	NeighborCount int
}

// DeadCell returns an empty cell.
func DeadCell() Cell {
	return Cell{State: Dead}
}

// AliveCell returns a living cell with the given cached neighbor count.
func AliveCell(neighborCount int) Cell {
	return Cell{State: Alive, NeighborCount: neighborCount}
}

// DyingCell returns a decaying cell with the given cycles remaining.
func DyingCell(neighborCount, cyclesLeft int) Cell {
	return Cell{State: Dying, CyclesLeft: cyclesLeft, NeighborCount: neighborCount}
}

/*
Next applies the decay-extended Game of Life rules to a single cell and
returns its state for the next generation:

  - Alive survives on 2 or 3 live neighbors, otherwise it starts dying
    with a fresh decay budget of cyclesToDie.
  - Dying returns to Alive on exactly 3 live neighbors. Otherwise it
    loses one decay cycle per tick and becomes Dead once the budget is
    exhausted.
  - Dead becomes Alive on exactly 3 live neighbors, otherwise it stays
    Dead.

Next consumes the cell's cached NeighborCount, which must reflect the
live neighbors observed at the start of the current tick. It is total
over every state/count combination; there is no error path.
*/
func Next(c Cell, cyclesToDie int) Cell {
	switch c.State {
	case Alive:
		if c.NeighborCount < 2 || c.NeighborCount > 3 {
			return DyingCell(c.NeighborCount, cyclesToDie)
		}
		return c
	case Dying:
		if c.NeighborCount == 3 {
			return AliveCell(c.NeighborCount)
		}
		if c.CyclesLeft == 0 {
			return Cell{State: Dead, NeighborCount: c.NeighborCount}
		}
		return DyingCell(c.NeighborCount, c.CyclesLeft-1)
	default:
		if c.NeighborCount == 3 {
			return AliveCell(c.NeighborCount)
		}
		return c
	}
}
