package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"hookkit/internal/config"
	"hookkit/internal/llm"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [text...]",
		Short: "Send a prompt through the provider fallback chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvironment(true)
			cfg := config.Load()

			prompt, err := readPrompt(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if prompt == "" {
				return errors.New("prompt is required")
			}

			orch := llm.NewOrchestrator(cfg)
			out, _, ok := orch.CallWithFallback(cmd.Context(), prompt, llm.ModePrompt)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Error calling LLM providers")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// readPrompt joins args as the prompt, falling back to stdin when none
// are given.
func readPrompt(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
