package model

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-gol-decay/rules"
)

const (
	gridPosAlive = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// dyingShades orders glyphs from nearly faded to freshly dying.
var dyingShades = [...]string{"░░", "▒▒", "▓▓"}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the board to the terminal: alive cells as solid
// blocks, dying cells shaded by how much decay budget remains.
func (r *TerminalRenderer) Display(b *Board) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch c := b.CellAt(x, y); c.State {
			case rules.Alive:
				fmt.Print(gridPosAlive)
			case rules.Dying:
				fmt.Print(dyingShade(c.CyclesLeft, b.cyclesToDie))
			default:
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// dyingShade buckets the remaining decay fraction into a shade glyph.
func dyingShade(cyclesLeft, cyclesToDie int) string {
	bucket := len(dyingShades) * cyclesLeft / (cyclesToDie + 1)
	return dyingShades[min(bucket, len(dyingShades)-1)]
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
