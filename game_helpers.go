package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/utils"
)

// initializeGame validates the configuration and builds the seeded
// board. Any out-of-bounds seed coordinate fails here, before a window
// is opened.
func initializeGame(config utils.Config) (*model.Board, *utils.Stats, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return nil, nil, err
	}

	board, err := model.NewBoard(config.Width, config.Height, config.CyclesToDie, pattern)
	if err != nil {
		return nil, nil, err
	}

	return board, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	alive, _ := board.CountCells()
	fmt.Printf("Pattern: %s | Decay length: %d cycles\n", config.Pattern, config.CyclesToDie)
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		board.GetWidth(), board.GetHeight(), alive)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState records stats and stagnation history for the tick
// just completed and returns a status label for display.
func updateGameState(board *model.Board, lastFrameTime time.Time, stats *utils.Stats) string {
	alive, dying := board.CountCells()

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(board.GetGeneration(), alive, dying, frameDuration)

	// Update history for stagnation detection
	board.UpdateHistory()

	status := "Active"
	if board.IsStagnant() {
		status = "Stagnant"
	}
	if alive == 0 && dying == 0 {
		status = "Extinct"
	}

	return status
}

// displayGameStatus shows the current game status
func displayGameStatus(board *model.Board, stats *utils.Stats, status string) {
	density := float64(stats.AliveCells) / float64(board.GetWidth()*board.GetHeight()) * 100

	fmt.Printf("Gen: %d | Living: %d | Dying: %d | Density: %.1f%% | Status: %s\n",
		board.GetGeneration(), stats.AliveCells, stats.DyingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkStopConditions determines if the run loop should end
func checkStopConditions(config utils.Config, board *model.Board) (bool, string) {
	if config.MaxGenerations > 0 && board.GetGeneration() >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// printFinalStats summarizes the run after the loop exits
func printFinalStats(board *model.Board, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		board.GetGeneration(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
