// Package game drives boards: it builds them from a configuration, stamps the
// configured patterns, advances generations and hands snapshots to a renderer.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/patterns"
	"github.com/sheikhrachel/gol-board/utils"
)

// Reasons a run ends
const (
	StopCompleted = "completed"
	StopExtinct   = "extinction"
	StopStagnant  = "stagnation detected"
	StopCancelled = "cancelled"
	StopFailed    = "failed"
)

// Result summarizes a finished run
type Result struct {
	Name        string
	Generations int
	Population  int
	StopReason  string
	Final       model.Snapshot
	Elapsed     time.Duration
}

// Runner owns one board for the duration of a simulation
type Runner struct {
	config   utils.Config
	board    *model.Board
	renderer model.Renderer
	history  *model.History
	stats    *utils.Stats
	logger   *slog.Logger
}

// NewRunner validates config, builds the board and places every configured
// pattern on it.
func NewRunner(config utils.Config, renderer model.Renderer, logger *slog.Logger) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "[NewRunner] invalid config %q", config.Name)
	}

	board := model.NewBoard(config.Rows, config.Columns)
	for i, placement := range config.Placements {
		pattern, err := resolvePattern(placement)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewRunner] failed to resolve placement %d", i)
		}
		if err = board.Place(pattern, placement.Row, placement.Column); err != nil {
			return nil, errors.Wrapf(err, "[NewRunner] failed to place placement %d", i)
		}
		logger.Debug("placed pattern",
			"sim", config.Name, "pattern", pattern.Name(), "row", placement.Row, "column", placement.Column)
	}

	return &Runner{
		config:   config,
		board:    board,
		renderer: renderer,
		history:  model.NewHistory(),
		stats:    utils.NewStats(),
		logger:   logger,
	}, nil
}

// resolvePattern maps a placement to a catalog pattern or a seeded random field
func resolvePattern(p utils.Placement) (patterns.Pattern, error) {
	if p.Pattern == utils.RandomPattern {
		return patterns.Random{Height: p.Height, Width: p.Width, Seed: p.Seed}, nil
	}
	return patterns.Lookup(p.Pattern)
}

// Stats returns the run's performance counters
func (r *Runner) Stats() *utils.Stats {
	return r.stats
}

// Run renders the initial board, then advances and renders it until the
// configured number of generations is reached, the board settles (when
// StopWhenStable is set) or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	initial := r.board.Snapshot()
	if err := r.render(initial); err != nil {
		return r.result(StopFailed), err
	}
	r.history.Record(initial)
	r.stats.Update(0, initial.Population(), boundingArea(initial), 0)
	r.logger.Info("simulation started",
		"sim", r.config.Name, "rows", r.config.Rows, "columns", r.config.Columns,
		"population", initial.Population())

	for r.board.Generation() < r.config.Generations {
		if err := wait(ctx, r.config.FrameRate); err != nil {
			r.logger.Info("simulation cancelled", "sim", r.config.Name, "generation", r.board.Generation())
			return r.result(StopCancelled), errors.Wrapf(err, "[Run] %s stopped at generation %d",
				r.config.Name, r.board.Generation())
		}

		start := time.Now()
		r.board.Advance()
		snap := r.board.Snapshot()
		r.stats.Update(snap.Generation(), snap.Population(), boundingArea(snap), time.Since(start))

		if err := r.render(snap); err != nil {
			return r.result(StopFailed), err
		}
		r.logTrace(ctx, snap)

		if r.config.StopWhenStable {
			if stop, reason := checkStopConditions(snap, r.history); stop {
				r.stats.Settle(snap.Generation())
				r.logger.Info("simulation settled", "sim", r.config.Name, "reason", reason,
					"generation", snap.Generation())
				return r.result(reason), nil
			}
		}
		r.history.Record(snap)
	}

	r.logger.Info("simulation finished",
		"sim", r.config.Name, "generations", r.board.Generation(),
		"avg_population", r.stats.AveragePopulation, "elapsed", r.stats.Elapsed())
	return r.result(StopCompleted), nil
}

func (r *Runner) render(s model.Snapshot) error {
	r.renderer.Clear()
	if err := r.renderer.Display(s); err != nil {
		return errors.Wrapf(err, "[render] %s", r.config.Name)
	}
	return nil
}

func (r *Runner) logTrace(ctx context.Context, s model.Snapshot) {
	if !r.logger.Enabled(ctx, utils.LevelTrace) {
		return
	}
	r.logger.Log(ctx, utils.LevelTrace, "generation",
		"sim", r.config.Name, "generation", s.Generation(), "population", s.Population(),
		"bounding_box", r.stats.BoundingBoxSize)
}

func (r *Runner) result(reason string) Result {
	snap := r.board.Snapshot()
	return Result{
		Name:        r.config.Name,
		Generations: snap.Generation(),
		Population:  snap.Population(),
		StopReason:  reason,
		Final:       snap,
		Elapsed:     r.stats.Elapsed(),
	}
}

// boundingArea is the area of the box around the live cells, 0 when none are alive
func boundingArea(s model.Snapshot) int {
	if bounds, ok := s.Bounds(); ok {
		return bounds.Area()
	}
	return 0
}

// checkStopConditions determines if a settled board should stop the run
func checkStopConditions(s model.Snapshot, history *model.History) (bool, string) {
	if s.Population() == 0 {
		return true, StopExtinct
	}
	if history.IsStagnant(s) {
		return true, StopStagnant
	}
	return false, ""
}

// wait pauses for d, returning early with ctx's error if it is cancelled
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
