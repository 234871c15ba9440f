package llm

import "strings"

// Provider names an LLM backend. The set is closed; hook compatibility
// depends on these exact strings.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"

	// ProviderFallback is the sentinel for "no provider available".
	ProviderFallback Provider = "fallback"
)

// Mode selects how a provider executable is invoked: prompt streams the
// text on stdin, completion asks the provider to synthesize a short
// message itself.
type Mode string

const (
	ModePrompt     Mode = "prompt"
	ModeCompletion Mode = "completion"
)

// fallbackOrder is the fixed chain tried after the primary provider
// fails: fastest and cheapest first.
var fallbackOrder = []Provider{ProviderOllama, ProviderOpenAI, ProviderAnthropic}

// fallbackMessages guarantee a user-visible result when every provider
// is unavailable.
var fallbackMessages = []string{
	"Work complete!",
	"All done!",
	"Task finished!",
	"Job complete!",
	"Ready for next task!",
}

// title renders a provider name for diagnostic log lines ("Ollama
// failed: ...").
func (p Provider) title() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
