package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkotenko/tui-delver/internal/platform/tui"
)

var flagClear string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored runs",
	Long: `Opens an interactive browser over the recorded runs, grouped by
scenario, with per-scenario aggregates.

Examples:
  delver history
  delver history --clear skirmish`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagClear, "clear", "", "Delete all stored runs for the given scenario and exit")
}

func runHistory(cmd *cobra.Command, args []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagClear != "" {
		if err := store.ClearRuns(flagClear); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %q.\n", flagClear)
		return
	}

	width, height := terminalSize()
	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
