package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "Path to JSON configuration file")
		pattern    = flag.String("pattern", "", "Seed pattern preset, overrides config")
		renderer   = flag.String("renderer", "", "Renderer (window or terminal), overrides config")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}
	if *pattern != "" {
		config.Pattern = *pattern
	}
	if *renderer != "" {
		config.Renderer = *renderer
	}

	board, stats, err := initializeGame(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if config.Renderer == utils.RendererWindow {
		runWindow(config, board, stats)
	} else {
		runTerminal(config, board, stats)
	}

	printFinalStats(board, stats)
}

// runWindow drives the simulation inside a raylib window. The window's
// target FPS paces the loop; the board advances exactly once per frame
// before the frame is drawn.
func runWindow(config utils.Config, board *model.Board, stats *utils.Stats) {
	renderer := model.NewWindowRenderer(board, config.CellSize, config.TargetFPS)
	defer renderer.Close()

	lastFrameTime := time.Now()
	for !renderer.ShouldClose() {
		frameStart := time.Now()

		board.Advance()
		renderer.Draw(board)

		updateGameState(board, lastFrameTime, stats)
		lastFrameTime = frameStart

		if stop, reason := checkStopConditions(config, board); stop {
			fmt.Printf("Stopping: %s\n", reason)
			return
		}
	}
}

// runTerminal drives the simulation with terminal rendering and a
// frame-rate sleep, exiting cleanly on SIGINT/SIGTERM between ticks.
func runTerminal(config utils.Config, board *model.Board, stats *utils.Stats) {
	renderer := &model.TerminalRenderer{}
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastFrameTime := time.Now()
	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()

		board.Advance()

		status := updateGameState(board, lastFrameTime, stats)
		lastFrameTime = frameStart

		renderer.Clear()
		displayGameStatus(board, stats, status)
		renderer.Display(board)

		if stop, reason := checkStopConditions(config, board); stop {
			fmt.Printf("Stopping: %s\n", reason)
			return
		}

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
