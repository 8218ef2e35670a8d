package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive scenario picker",
	Long:  `Opens a menu to browse scenarios and stored runs interactively.`,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	model := tui.NewSessionModel(store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
