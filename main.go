package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-board/game"
	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/patterns"
	"github.com/sheikhrachel/gol-board/utils"
)

var version = "0.1.0-dev"

func main() {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gol",
		Short: "Conway's Game of Life on a bounded board",
		Long: `gol runs Conway's Game of Life on a fixed-size board whose edges do not wrap.

Patterns are stamped onto the board before the first generation, then the
board is advanced and printed one generation at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace (overrides config)")

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
		newPatternsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single simulation and print every generation",
		Example: `  gol run
  gol run --rows 20 --columns 40 --generations 100 --pattern glider@1,2 --pattern blinker@10,10
  gol run --config life.yaml --render blocks --frame-rate 150ms --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			logger := utils.NewLogger(config.LogLevel, cmd.ErrOrStderr())
			mode, err := model.ParseRenderMode(config.Render)
			if err != nil {
				return err
			}
			renderer := model.NewTerminalRenderer(cmd.OutOrStdout(), mode, config.ClearScreen)

			runner, err := game.NewRunner(config, renderer, logger)
			if err != nil {
				return err
			}

			result, err := runner.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "🛑 Shutting down gracefully...")
				err = nil
			}
			if err != nil {
				return err
			}

			if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
				displayStats(cmd.ErrOrStderr(), result, runner.Stats())
			}
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a JSON or YAML config file")
	cmd.Flags().Int("rows", 0, "Board rows")
	cmd.Flags().Int("columns", 0, "Board columns")
	cmd.Flags().Int("generations", 0, "Number of generations to run")
	cmd.Flags().StringArray("pattern", nil, "Placement as name@row,column or random@row,column,height,width[,seed] (repeatable, replaces config placements)")
	cmd.Flags().String("render", "", "Render mode: ascii or blocks")
	cmd.Flags().Duration("frame-rate", 0, "Pause between generations")
	cmd.Flags().Bool("clear", false, "Clear the terminal before each generation")
	cmd.Flags().Bool("stop-when-stable", false, "Stop once the board dies out or repeats itself")
	cmd.Flags().Bool("stats", false, "Print run statistics to stderr when done")

	return cmd
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <config>...",
		Short: "Run several simulations side by side and print a summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := make([]utils.Config, 0, len(args))
			for _, path := range args {
				config, err := utils.LoadConfig(path)
				if err != nil {
					return err
				}
				configs = append(configs, config)
			}

			level, _ := cmd.Flags().GetString("log-level")
			logger := utils.NewLogger(level, cmd.ErrOrStderr())
			parallel, _ := cmd.Flags().GetInt("parallel")

			start := time.Now()
			results, err := game.RunAll(cmd.Context(), configs, parallel, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return displayBatchResults(cmd.OutOrStdout(), results, jsonOut, time.Since(start))
		},
	}

	cmd.Flags().Int("parallel", 0, "Maximum simulations running at once (0 = no limit)")
	cmd.Flags().Bool("json", false, "Output the summary as JSON")

	return cmd
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range patterns.Names() {
				pattern, err := patterns.Lookup(name)
				if err != nil {
					return err
				}
				preview, err := previewPattern(pattern)
				if err != nil {
					return err
				}
				height, width := pattern.Dims()
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d)\n%s\n", name, height, width, preview)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (height x width chosen per placement, seeded)\n", utils.RandomPattern)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if !jsonOut {
				fmt.Fprintf(cmd.OutOrStdout(), "gol version %s\n", version)
				return nil
			}
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version}); err != nil {
				return errors.Wrap(err, "[version] failed to encode version")
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
