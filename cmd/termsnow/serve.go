package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnow/internal/platform/tui"
)

var (
	flagSSHAddress  string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote watching",
	Long: `Start an SSH server that lets anyone watch the snow remotely.

Every connection gets its own scene picker and an independent
simulation, so a single host can serve many terminals at once.

Connect with:
  ssh -p 23235 localhost

Examples:
  termsnow serve
  termsnow serve --ssh :2222
  termsnow serve --ssh :2222 --host-key ./host_key --idle-timeout 10m`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddress, "ssh", defaults.Address, "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Close idle connections after this duration")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddress,
		HostKeyPath: flagHostKeyPath,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
