package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/dungeon"
	"github.com/vkotenko/tui-delver/internal/registry"
	"github.com/vkotenko/tui-delver/internal/storage"
)

var (
	flagRuns     int
	flagMaxTurns int
)

var simCmd = &cobra.Command{
	Use:   "sim <scenario>",
	Short: "Run headless simulations",
	Long: `Runs the scenario without a UI, as fast as the machine allows,
and records each finished run in the database.

With --seed set, run i uses seed+i, so a batch is reproducible.

Examples:
  delver sim skirmish
  delver sim swarm --runs 50
  delver sim siege --runs 10 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs to simulate")
	simCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 100000, "Abort a run after this many scheduler passes")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom species config YAML")
}

func runSim(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	if !registry.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		os.Exit(1)
	}

	dungeon.SetConfigPath(flagConfig)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "delver-sim",
	})

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	for i := 0; i < flagRuns; i++ {
		scenario, err := registry.Create(scenarioID)
		if err != nil {
			logger.Error("cannot create scenario", "error", err)
			os.Exit(1)
		}

		cfg := core.DefaultConfig()
		cfg.Seed = baseSeed + int64(i)
		scenario.Reset(cfg)

		started := time.Now()
		state := scenario.State()
		for turn := 0; turn < flagMaxTurns && !state.Over; turn++ {
			state = scenario.Step()
		}

		if !state.Over {
			logger.Warn("run aborted",
				"run", i+1,
				"turns", state.Turn,
				"alive", state.Alive,
			)
			continue
		}

		logger.Info("run finished",
			"run", i+1,
			"seed", cfg.Seed,
			"turns", state.Turn,
			"clock", state.Clock,
			"slain", state.Slain,
			"winner", state.Winner,
		)

		if store != nil {
			if _, err := store.SaveRun(storage.RunRecord{
				ScenarioID: scenarioID,
				Turns:      state.Turn,
				Clock:      state.Clock,
				Spawned:    state.Spawned,
				Slain:      state.Slain,
				Survivors:  state.Alive,
				Winner:     state.Winner,
				Duration:   int(time.Since(started).Seconds()),
			}); err != nil {
				logger.Error("cannot save run", "error", err)
			}
		}
	}

	if store != nil {
		if stats, err := store.ScenarioStats(scenarioID); err == nil && stats.Runs > 0 {
			logger.Info("scenario totals",
				"runs", stats.Runs,
				"avg_turns", fmt.Sprintf("%.0f", stats.AvgTurns),
				"avg_clock", fmt.Sprintf("%.0f", stats.AvgClock),
				"total_slain", stats.TotalSlain,
			)
		}
	}
}
