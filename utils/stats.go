package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	AliveCells           int
	DyingCells           int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed tick. Population is the alive count;
// dying cells are tracked separately since they no longer feed the
// neighbor rule.
func (s *Stats) Update(generation, alive, dying int, duration time.Duration) {
	s.TotalGenerations = generation
	s.AliveCells = alive
	s.DyingCells = dying
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(alive)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(alive) * 0.1)
	}
}
