package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hookkit",
		Short:        "hookkit - session and LLM hook utilities",
		SilenceUsage: true,
	}

	root.AddCommand(newCompletionCmd())
	root.AddCommand(newPromptCmd())
	root.AddCommand(newSessionDirCmd())
	root.AddCommand(newOllamaCmd())
	root.AddCommand(newOpenAICmd())
	root.AddCommand(newAnthropicCmd())
	root.AddCommand(newVersionCmd())
	return root
}
