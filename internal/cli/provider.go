package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hookkit/internal/config"
	"hookkit/internal/llm"

	"github.com/spf13/cobra"
)

// providerShim describes one standalone provider command. These are the
// executables the invoker's registry can point at: --completion
// synthesizes a short message, anything else is a prompt (args joined,
// or stdin when no args are given). Failures print an Error line rather
// than returning an error.
type providerShim struct {
	name      string
	short     string
	errText   string
	newClient func(cfg config.Config) (llm.Client, error)
}

func newOllamaCmd() *cobra.Command {
	return newShimCmd(providerShim{
		name:    "ollama",
		short:   "Call the Ollama API directly",
		errText: "Error calling Ollama API",
		newClient: func(cfg config.Config) (llm.Client, error) {
			if strings.TrimSpace(cfg.OllamaAPIKey) == "" {
				return nil, errors.New("OLLAMA_API_KEY is not set")
			}
			return llm.NewOllamaClient(llm.OllamaConfig{
				BaseURL: cfg.OllamaBaseURL,
				Token:   cfg.OllamaAPIKey,
				Model:   cfg.OllamaModel,
			})
		},
	})
}

func newOpenAICmd() *cobra.Command {
	return newShimCmd(providerShim{
		name:    "openai",
		short:   "Call the OpenAI API directly",
		errText: "Error calling OpenAI API",
		newClient: func(cfg config.Config) (llm.Client, error) {
			return llm.NewOpenAIClient(llm.OpenAIConfig{
				BaseURL: cfg.OpenAIBaseURL,
				Token:   cfg.OpenAIAPIKey,
				Model:   cfg.OpenAIModel,
			})
		},
	})
}

func newAnthropicCmd() *cobra.Command {
	return newShimCmd(providerShim{
		name:    "anthropic",
		short:   "Call the Anthropic API directly",
		errText: "Error calling Anthropic API",
		newClient: func(cfg config.Config) (llm.Client, error) {
			return llm.NewAnthropicClient(llm.AnthropicConfig{
				BaseURL: cfg.AnthropicBaseURL,
				Token:   cfg.AnthropicAPIKey,
				Model:   cfg.AnthropicModel,
			})
		},
	})
}

func newShimCmd(shim providerShim) *cobra.Command {
	var completion bool
	cmd := &cobra.Command{
		Use:   shim.name + " [prompt...]",
		Short: shim.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvironment(false)
			cfg := config.Load()
			out := cmd.OutOrStdout()

			if completion {
				msg := shimCompletion(cmd.Context(), shim, cfg)
				if msg == "" {
					fmt.Fprintln(out, "Error generating completion message")
					return nil
				}
				fmt.Fprintln(out, msg)
				return nil
			}

			prompt, err := readPrompt(args, cmd.InOrStdin())
			if err != nil || prompt == "" {
				fmt.Fprintf(out, "Usage: hookkit %[1]s 'your prompt here' or hookkit %[1]s --completion\n", shim.name)
				return nil
			}

			response := shimPrompt(cmd.Context(), shim, cfg, prompt)
			if response == "" {
				fmt.Fprintln(out, shim.errText)
				return nil
			}
			fmt.Fprintln(out, response)
			return nil
		},
	}
	cmd.Flags().BoolVar(&completion, "completion", false, "synthesize a short completion message")
	return cmd
}

func shimPrompt(ctx context.Context, shim providerShim, cfg config.Config, prompt string) string {
	client, err := shim.newClient(cfg)
	if err != nil {
		return ""
	}
	resp, err := client.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Content)
}

func shimCompletion(ctx context.Context, shim providerShim, cfg config.Config) string {
	return llm.CleanResponse(shimPrompt(ctx, shim, cfg, llm.CompletionPrompt(cfg.EngineerName)))
}
