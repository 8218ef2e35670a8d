package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkotenko/tui-delver/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows a list of all scenarios registered in the simulator.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, sc := range scenarios {
		if len(sc.ID) > maxIDLen {
			maxIDLen = len(sc.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, sc := range scenarios {
		fmt.Printf("  %-*s  %s\n", maxIDLen, sc.ID, sc.Title)
	}

	fmt.Println()
	fmt.Println("Run 'delver watch <id>' to watch a scenario.")
}
