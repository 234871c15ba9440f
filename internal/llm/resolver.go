package llm

import (
	"strings"

	"hookkit/internal/config"
)

// providerAliases maps preference spellings to providers. Only the
// observed aliases are honored.
var providerAliases = map[string]Provider{
	"ollama":    ProviderOllama,
	"openai":    ProviderOpenAI,
	"gpt":       ProviderOpenAI,
	"oai":       ProviderOpenAI,
	"anthropic": ProviderAnthropic,
	"claude":    ProviderAnthropic,
	"anth":      ProviderAnthropic,
}

// Resolve picks the provider to use. An explicit preference wins when
// its credential is present; otherwise the first provider in the fixed
// priority order with a credential wins; with no credentials at all the
// fallback sentinel is returned.
func Resolve(cfg config.Config) Provider {
	preference := strings.ToLower(strings.TrimSpace(cfg.ProviderPreference))
	if preferred, ok := providerAliases[preference]; ok && hasCredential(cfg, preferred) {
		return preferred
	}

	for _, provider := range fallbackOrder {
		if hasCredential(cfg, provider) {
			return provider
		}
	}
	return ProviderFallback
}

func hasCredential(cfg config.Config, provider Provider) bool {
	switch provider {
	case ProviderOllama:
		return strings.TrimSpace(cfg.OllamaAPIKey) != ""
	case ProviderOpenAI:
		return strings.TrimSpace(cfg.OpenAIAPIKey) != ""
	case ProviderAnthropic:
		return strings.TrimSpace(cfg.AnthropicAPIKey) != ""
	default:
		return false
	}
}
