// delver is a terminal dungeon-combat simulator. Creatures take turns
// on a shared scheduler; you pick a scenario and watch the fight play
// out, live in your terminal or over SSH.
//
// Usage:
//
//	delver list                - List available scenarios
//	delver watch <scenario>    - Watch a scenario run
//	delver menu                - Interactive scenario picker
//	delver sim <scenario>      - Run headless simulations
//	delver history             - Browse stored runs
//	delver serve               - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>    - Scheduler passes per second in the viewer (default: 10)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Runs database path (default: ~/.delver/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vkotenko/tui-delver/internal/dungeon"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "delver",
	Short: "Delver - Watch dungeon fights in your terminal",
	Long: `Delver is a terminal-based combat simulator. Each scenario drops a
mix of creatures into an arena; a turn scheduler decides who moves when,
and the fight runs until one faction remains.

Available commands:
  list     - Show all available scenarios
  watch    - Watch a specific scenario directly
  menu     - Interactive scenario picker
  sim      - Run headless simulations and record the results
  history  - Browse stored runs
  serve    - Start SSH server for remote viewing

Examples:
  delver list
  delver watch skirmish
  delver watch siege --seed 42
  delver sim swarm --runs 20
  delver serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Scheduler passes per second in the viewer")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.delver/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
