package utils

import "time"

// Stats tracks how a simulation's population develops over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	BoundingBoxSize      int

	// PeakPopulation is the largest population seen, first reached at PeakGeneration
	PeakPopulation int
	PeakGeneration int

	// SettledAt is the generation at which the board died out or started
	// repeating; only meaningful when Settled is true
	SettledAt int
	Settled   bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's population, the area of its live bounding
// box and the time it took to compute
func (s *Stats) Update(generation, population, boundingBox int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.BoundingBoxSize = boundingBox
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if population > s.PeakPopulation {
		s.PeakPopulation = population
		s.PeakGeneration = generation
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Settle marks the generation at which the board stopped changing
func (s *Stats) Settle(generation int) {
	s.SettledAt = generation
	s.Settled = true
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
