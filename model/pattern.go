package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Coord is a single seed position on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pattern is a named fixed set of coordinates seeded Alive when the
// board is constructed.
type Pattern struct {
	Name  string
	Cells []Coord
}

const (
	// PatternCluster is a small asymmetric five-cell cluster.
	PatternCluster = "cluster"
	// PatternGosperGun is the Gosper glider gun, an oscillator that
	// emits a glider every 30 generations. Needs at least a 38x11 grid.
	PatternGosperGun = "gosper-gun"
)

var presets = map[string]Pattern{
	PatternCluster: {
		Name: PatternCluster,
		Cells: []Coord{
			{X: 12, Y: 10},
			{X: 12, Y: 11},
			{X: 10, Y: 11},
			{X: 11, Y: 12},
			{X: 12, Y: 12},
		},
	},
	PatternGosperGun: {
		Name: PatternGosperGun,
		Cells: []Coord{
			// Left block
			{X: 1, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 6}, {X: 2, Y: 6},
			// Left ship
			{X: 11, Y: 5}, {X: 11, Y: 6}, {X: 11, Y: 7},
			{X: 12, Y: 4}, {X: 12, Y: 8},
			{X: 13, Y: 3}, {X: 13, Y: 9},
			{X: 14, Y: 3}, {X: 14, Y: 9},
			{X: 15, Y: 6},
			{X: 16, Y: 4}, {X: 16, Y: 8},
			{X: 17, Y: 5}, {X: 17, Y: 6}, {X: 17, Y: 7},
			{X: 18, Y: 6},
			// Right ship
			{X: 21, Y: 3}, {X: 21, Y: 4}, {X: 21, Y: 5},
			{X: 22, Y: 3}, {X: 22, Y: 4}, {X: 22, Y: 5},
			{X: 23, Y: 2}, {X: 23, Y: 6},
			{X: 25, Y: 1}, {X: 25, Y: 2}, {X: 25, Y: 6}, {X: 25, Y: 7},
			// Right block
			{X: 35, Y: 3}, {X: 35, Y: 4}, {X: 36, Y: 3}, {X: 36, Y: 4},
		},
	},
}

// PatternByName looks up a seed preset by name.
func PatternByName(name string) (Pattern, error) {
	pattern, ok := presets[name]
	if !ok {
		return Pattern{}, errors.Errorf("[PatternByName] unknown pattern %q, known patterns: %s",
			name, strings.Join(PatternNames(), ", "))
	}
	return pattern, nil
}

// PatternNames returns the available preset names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
