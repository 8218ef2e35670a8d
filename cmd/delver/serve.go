package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkotenko/tui-delver/internal/platform/tui"
)

var (
	flagAddr    string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote viewing",
	Long: `Starts an SSH server so anyone can ssh in and watch scenarios.

Each session gets the interactive scenario picker; runs are recorded in
the server's database.

Examples:
  delver serve
  delver serve --ssh :2222
  delver serve --ssh :2222 --host-key ./host_key`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "ssh", ":23235", "Address to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
