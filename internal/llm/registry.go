package llm

import "path/filepath"

// Registry maps a provider to the executable implementing it. Adding a
// provider is a registry entry, not a code change.
type Registry map[Provider]string

// DefaultRegistry wires the three stock provider scripts under scriptDir.
func DefaultRegistry(scriptDir string) Registry {
	return Registry{
		ProviderOllama:    filepath.Join(scriptDir, "ollama_provider.py"),
		ProviderOpenAI:    filepath.Join(scriptDir, "oai.py"),
		ProviderAnthropic: filepath.Join(scriptDir, "anth.py"),
	}
}
