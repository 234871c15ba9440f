package cli

import (
	"fmt"

	"hookkit/internal/config"
	"hookkit/internal/session"

	"github.com/spf13/cobra"
)

// newSessionDirCmd ensures a session's log directory exists and prints
// its path. This is the one command that fails loud: callers need to
// know when logging storage is unusable.
func newSessionDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session-dir <session-id>",
		Short: "Ensure a session's log directory exists and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvironment(true)
			cfg := config.Load()

			dir, err := session.NewManager(cfg.LogDir).EnsureLogDir(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
