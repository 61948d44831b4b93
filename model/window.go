package model

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sheikhrachel/go-gol-decay/rules"
)

const (
	windowTitle = "Game of Life (decay)"

	// dyingDim caps the brightness of dying cells relative to alive ones.
	dyingDim = 0.3
)

// WindowRenderer draws the board into a raylib window, one scaled
// square per cell. Frame pacing is owned by raylib's target FPS, not
// the board.
type WindowRenderer struct {
	cellSize int32
}

// NewWindowRenderer opens a window sized to the board at the given
// integer cell scale.
func NewWindowRenderer(b *Board, cellSize, targetFPS int) *WindowRenderer {
	rl.InitWindow(int32(b.GetWidth()*cellSize), int32(b.GetHeight()*cellSize), windowTitle)
	rl.SetTargetFPS(int32(targetFPS))
	return &WindowRenderer{cellSize: int32(cellSize)}
}

// ShouldClose reports whether the user closed the window or pressed
// Escape.
func (r *WindowRenderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Draw renders one frame: alive cells white, dying cells gray fading
// with the remaining decay budget, dead cells left as background.
func (r *WindowRenderer) Draw(b *Board) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for index, cell := range b.Cells() {
		var color rl.Color
		switch cell.State {
		case rules.Alive:
			color = rl.White
		case rules.Dying:
			intensity := uint8(255.0 * dyingDim * float32(cell.CyclesLeft) / float32(b.CyclesToDie()))
			color = rl.NewColor(intensity, intensity, intensity, 255)
		default:
			continue
		}

		x, y := b.IndexToCoordinates(index)
		rl.DrawRectangle(int32(x)*r.cellSize, int32(y)*r.cellSize, r.cellSize, r.cellSize, color)
	}

	rl.EndDrawing()
}

// Close tears the window down.
func (r *WindowRenderer) Close() {
	rl.CloseWindow()
}
