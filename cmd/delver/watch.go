package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/dungeon"
	"github.com/vkotenko/tui-delver/internal/platform/tui"
	"github.com/vkotenko/tui-delver/internal/registry"
	"github.com/vkotenko/tui-delver/internal/storage"
)

var flagConfig string

var watchCmd = &cobra.Command{
	Use:   "watch <scenario>",
	Short: "Watch a scenario run",
	Long: `Start the viewer for the specified scenario.

Controls:
  P/Space    - Pause/resume
  ./N        - Single step while paused
  +/-        - Faster/slower
  R          - Restart with a fresh seed
  Q/Ctrl+C   - Quit

Examples:
  delver watch skirmish
  delver watch siege --seed 42
  delver watch swarm --config ./my-species.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom species config YAML")
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the runs database, or returns nil when unavailable.
// Viewing works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: runs database unavailable: %v\n", err)
		return nil
	}
	return store
}

func runWatch(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	if !registry.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'delver list' to see available scenarios.")
		os.Exit(1)
	}

	dungeon.SetConfigPath(flagConfig)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	scenario, err := registry.Create(scenarioID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(scenario, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
