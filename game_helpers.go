package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-board/game"
	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/patterns"
	"github.com/sheikhrachel/gol-board/utils"
)

// configFromFlags loads the config file (or the defaults) and applies any
// flags the user set explicitly
func configFromFlags(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if flags.Changed("rows") {
		config.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("columns") {
		config.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("generations") {
		config.Generations, _ = flags.GetInt("generations")
	}
	if flags.Changed("render") {
		config.Render, _ = flags.GetString("render")
	}
	if flags.Changed("frame-rate") {
		config.FrameRate, _ = flags.GetDuration("frame-rate")
	}
	if flags.Changed("clear") {
		config.ClearScreen, _ = flags.GetBool("clear")
	}
	if flags.Changed("stop-when-stable") {
		config.StopWhenStable, _ = flags.GetBool("stop-when-stable")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("pattern") {
		args, _ := flags.GetStringArray("pattern")
		config.Placements = make([]utils.Placement, 0, len(args))
		for _, arg := range args {
			placement, err := parsePlacement(arg)
			if err != nil {
				return config, err
			}
			config.Placements = append(config.Placements, placement)
		}
	}

	return config, nil
}

// parsePlacement parses name@row,column or random@row,column,height,width[,seed]
func parsePlacement(arg string) (utils.Placement, error) {
	name, coords, ok := strings.Cut(arg, "@")
	if !ok || name == "" {
		return utils.Placement{}, errors.Errorf("[parsePlacement] expected name@row,column, got %q", arg)
	}

	fields := strings.Split(coords, ",")
	values := make([]int64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return utils.Placement{}, errors.Wrapf(err, "[parsePlacement] bad number in %q", arg)
		}
		values[i] = v
	}

	placement := utils.Placement{Pattern: strings.ToLower(name)}
	switch {
	case placement.Pattern == utils.RandomPattern && (len(values) == 4 || len(values) == 5):
		placement.Height, placement.Width = int(values[2]), int(values[3])
		if len(values) == 5 {
			placement.Seed = values[4]
		}
	case placement.Pattern == utils.RandomPattern:
		return utils.Placement{}, errors.Errorf("[parsePlacement] expected random@row,column,height,width[,seed], got %q", arg)
	case len(values) != 2:
		return utils.Placement{}, errors.Errorf("[parsePlacement] expected name@row,column, got %q", arg)
	}
	placement.Row, placement.Column = int(values[0]), int(values[1])

	return placement, nil
}

// previewPattern renders a pattern on a board exactly the size of its box
func previewPattern(p patterns.Pattern) (string, error) {
	height, width := p.Dims()
	board := model.NewBoard(height, width)
	if err := board.Place(p, 0, 0); err != nil {
		return "", err
	}
	return board.Snapshot().String(), nil
}

// displayStats shows the final run statistics
func displayStats(w io.Writer, result game.Result, stats *utils.Stats) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Status: %s\n", result.Generations, result.Population, result.StopReason)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Elapsed().Seconds())
	if stats.BoundingBoxSize > 0 {
		fmt.Fprintf(w, "Bounding box: %d cells\n", stats.BoundingBoxSize)
	}
	fmt.Fprintf(w, "Peak: %d living at gen %d\n", stats.PeakPopulation, stats.PeakGeneration)
	if stats.Settled {
		fmt.Fprintf(w, "Settled at gen %d\n", stats.SettledAt)
	}
}

type batchSummary struct {
	Name        string `json:"name"`
	Generations int    `json:"generations"`
	Population  int    `json:"population"`
	StopReason  string `json:"stop_reason"`
	Hash        string `json:"hash"`
}

// displayBatchResults prints one line (or JSON object) per simulation
func displayBatchResults(w io.Writer, results []game.Result, jsonOut bool, elapsed time.Duration) error {
	summaries := make([]batchSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, batchSummary{
			Name:        r.Name,
			Generations: r.Generations,
			Population:  r.Population,
			StopReason:  r.StopReason,
			Hash:        r.Final.Hash(),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summaries); err != nil {
			return errors.Wrap(err, "[displayBatchResults] failed to encode summary")
		}
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(w, "%-16s gen: %-6d living: %-6d status: %s\n", s.Name, s.Generations, s.Population, s.StopReason)
	}
	fmt.Fprintf(w, "%d simulations in %.1fs\n", len(summaries), elapsed.Seconds())
	return nil
}
