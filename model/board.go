package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-decay/rules"
)

// Board represents the game board: a fixed-size grid of cells stored in
// row-major order, plus a generation counter that increases by exactly
// one per completed tick. The board is constructed once, mutated in
// place every tick, and never resized.
type Board struct {
	width       int
	height      int
	cyclesToDie int
	generation  int
	cells       []rules.Cell
	history     []string // Store recent board hashes for cycle detection
}

// NewBoard creates a board with the given dimensions and decay length,
// seeds the pattern's coordinates as Alive, and leaves every other cell
// Dead. A seed coordinate outside the grid is a configuration error and
// fails construction rather than being silently dropped.
func NewBoard(width, height, cyclesToDie int, pattern Pattern) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewBoard] invalid dimensions %dx%d", width, height)
	}
	if cyclesToDie <= 0 {
		return nil, errors.Errorf("[NewBoard] cycles_to_die must be positive, got %d", cyclesToDie)
	}

	b := &Board{
		width:       width,
		height:      height,
		cyclesToDie: cyclesToDie,
		cells:       make([]rules.Cell, width*height),
	}

	for _, coord := range pattern.Cells {
		index, ok := b.coordinatesToIndex(coord.X, coord.Y)
		if !ok {
			return nil, errors.Errorf("[NewBoard] pattern %q seed cell (%d,%d) is outside the %dx%d grid",
				pattern.Name, coord.X, coord.Y, width, height)
		}
		b.cells[index] = rules.AliveCell(0)
	}

	return b, nil
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// GetGeneration returns the number of completed ticks
func (b *Board) GetGeneration() int {
	return b.generation
}

// CyclesToDie returns the decay length configured at construction
func (b *Board) CyclesToDie() int {
	return b.cyclesToDie
}

// Cells exposes the current cell slice for renderers to iterate with
// their linear index. Callers must not mutate it.
func (b *Board) Cells() []rules.Cell {
	return b.cells
}

// CellAt returns the cell at (x, y), or a Dead cell for off-grid
// coordinates.
func (b *Board) CellAt(x, y int) rules.Cell {
	index, ok := b.coordinatesToIndex(x, y)
	if !ok {
		return rules.DeadCell()
	}
	return b.cells[index]
}

// IndexToCoordinates recovers the (x, y) position of a linear cell index
func (b *Board) IndexToCoordinates(index int) (x, y int) {
	return index % b.width, index / b.width
}

// coordinatesToIndex maps (x, y) to a linear index. The second return
// is false when the coordinate is off the grid; edges are hard
// boundaries, not toroidal.
func (b *Board) coordinatesToIndex(x, y int) (int, bool) {
	if x < 0 || x >= b.width {
		return 0, false
	}
	if y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// liveNeighborCount counts the Alive cells among the 8 Moore neighbors
// of the cell at index. Off-grid positions count as not alive.
func (b *Board) liveNeighborCount(index int) int {
	x, y := b.IndexToCoordinates(index)

	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if neighbor, ok := b.coordinatesToIndex(x+dx, y+dy); ok && b.cells[neighbor].State == rules.Alive {
				count++
			}
		}
	}
	return count
}

// UpdateLiveNeighborCounts recomputes every cell's cached neighbor
// count from the current states. The pass only reads cell states and
// only writes counts, so the result is independent of iteration order
// and rows can be sharded across workers.
func (b *Board) UpdateLiveNeighborCounts() {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			for index := startRow * b.width; index < endRow*b.width; index++ {
				b.cells[index].NeighborCount = b.liveNeighborCount(index)
			}
			return nil
		})
	}

	// Workers never return an error; Wait only joins them.
	_ = eg.Wait()
}

// Step applies the transition rule to every cell using the neighbor
// counts computed this tick. Each cell transitions independently; no
// cell observes another cell's post-transition state.
func (b *Board) Step() {
	for i := range b.cells {
		b.cells[i] = rules.Next(b.cells[i], b.cyclesToDie)
	}
}

// Advance moves the simulation forward by exactly one tick: the
// neighbor-count pass fully precedes the transition pass, then the
// generation counter increments by one.
func (b *Board) Advance() {
	b.UpdateLiveNeighborCounts()
	b.Step()
	b.generation++
}

// CountCells returns the current Alive and Dying populations
func (b *Board) CountCells() (alive, dying int) {
	for _, c := range b.cells {
		switch c.State {
		case rules.Alive:
			alive++
		case rules.Dying:
			dying++
		}
	}
	return alive, dying
}

// GetBoardHash returns an MD5 hash of the current cell states,
// including decay counters so a fading field is not mistaken for a
// static one.
func (b *Board) GetBoardHash() string {
	h := md5.New()
	for _, c := range b.cells {
		h.Write([]byte{byte(c.State), byte(c.CyclesLeft)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (b *Board) UpdateHistory() {
	b.history = append(b.history, b.GetBoardHash())

	// Keep only last 5 states to detect cycles
	if len(b.history) > 5 {
		b.history = b.history[1:]
	}
}

// IsStagnant checks if the board is stuck in a cycle or static state
func (b *Board) IsStagnant() bool {
	if len(b.history) < 3 {
		return false
	}

	currentHash := b.GetBoardHash()

	// Check for static state and short cycles
	for back := 1; back <= 3; back++ {
		if len(b.history) >= back && b.history[len(b.history)-back] == currentHash {
			return true
		}
	}

	return false
}
