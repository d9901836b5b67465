package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tuigames/chaserun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server for remote play",
	Long: `Start an SSH server so players can connect and play remotely:

  ssh -p 23234 localhost

Each session gets its own menu and game state; scores land in the
shared database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKeyPath,
			DBPath:      flagDBPath,
			IdleTimeout: flagIdleTimeout,
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this duration")
}
