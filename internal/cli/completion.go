package cli

import (
	"fmt"

	"hookkit/internal/config"
	"hookkit/internal/llm"

	"github.com/spf13/cobra"
)

// newCompletionCmd generates the short completion message hooks speak
// aloud when a task finishes. It always prints something: a provider
// reply when one answers, a canned message otherwise.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Generate a short task-completion message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvironment(true)
			cfg := config.Load()
			orch := llm.NewOrchestrator(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), orch.CompletionMessage(cmd.Context()))
			return nil
		},
	}
}
