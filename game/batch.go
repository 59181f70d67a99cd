package game

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// RunAll runs independent simulations with at most limit of them in flight
// (no limit when limit <= 0). Each board is still advanced by a single
// goroutine. Frames are not rendered and frame delays are skipped. Results are
// returned in the order of configs; the first failure cancels the rest.
func RunAll(ctx context.Context, configs []utils.Config, limit int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(configs))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, config := range configs {
		config.FrameRate = 0
		config.ClearScreen = false

		eg.Go(func() error {
			runner, err := NewRunner(config, model.NewTerminalRenderer(io.Discard, model.RenderASCII, false), logger)
			if err != nil {
				return errors.Wrapf(err, "[RunAll] failed to set up simulation %d", i)
			}

			result, err := runner.Run(ctx)
			if err != nil {
				return errors.Wrapf(err, "[RunAll] simulation %d failed", i)
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
