package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every setting the hook utilities read. It is populated
// once by Load and threaded through calls so nothing else touches the
// process environment.
type Config struct {
	LogDir             string
	ScriptDir          string
	ProviderPreference string
	EngineerName       string

	OllamaAPIKey  string
	OllamaBaseURL string
	OllamaModel   string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
}

const (
	KeyLogDir             = "CLAUDE_HOOKS_LOG_DIR"
	KeyScriptDir          = "CLAUDE_HOOKS_LLM_DIR"
	KeyProviderPreference = "SUMMARY_LLM_PROVIDER"
	KeyEngineerName       = "ENGINEER_NAME"
	KeyOllamaAPIKey       = "OLLAMA_API_KEY"
	KeyOllamaBaseURL      = "OLLAMA_BASE_URL"
	KeyOllamaModel        = "OLLAMA_MODEL"
	KeyOpenAIAPIKey       = "OPENAI_API_KEY"
	KeyOpenAIBaseURL      = "OPENAI_BASE_URL"
	KeyOpenAIModel        = "OPENAI_MODEL"
	KeyAnthropicAPIKey    = "ANTHROPIC_API_KEY"
	KeyAnthropicBaseURL   = "ANTHROPIC_BASE_URL"
	KeyAnthropicModel     = "ANTHROPIC_MODEL"
)

const envWalkDepth = 5

// LoadEnvironment loads the first .env file found by the discovery walk
// into the process environment. The hook path loads with override, the
// standalone provider shims without; keep that asymmetry.
func LoadEnvironment(override bool) {
	for _, path := range envFilePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if override {
			_ = godotenv.Overload(path)
		} else {
			_ = godotenv.Load(path)
		}
		return
	}
}

// envFilePaths lists candidate .env locations: the current directory,
// the explicit current directory, the user claude directory, then up to
// five parents of the working directory.
func envFilePaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	paths := []string{".env", filepath.Join(cwd, ".env")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".claude", ".env"))
	}
	dir := cwd
	for i := 0; i < envWalkDepth; i++ {
		paths = append(paths, filepath.Join(dir, ".env"))
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return paths
}

// Load reads the recognized keys from the environment and applies
// defaults. A fresh viper instance keeps repeated loads independent.
func Load() Config {
	v := viper.New()
	v.SetDefault(KeyLogDir, "logs")
	v.SetDefault(KeyScriptDir, filepath.Join(".claude", "hooks", "utils", "llm"))
	v.SetDefault(KeyOllamaBaseURL, "https://ollama.com")
	v.SetDefault(KeyOllamaModel, "gpt-oss:120b")
	v.SetDefault(KeyOpenAIBaseURL, "https://api.openai.com")
	v.SetDefault(KeyOpenAIModel, "gpt-4o-mini")
	v.SetDefault(KeyAnthropicBaseURL, "https://api.anthropic.com")
	v.SetDefault(KeyAnthropicModel, "claude-3-5-haiku-latest")

	for _, key := range []string{
		KeyLogDir, KeyScriptDir, KeyProviderPreference, KeyEngineerName,
		KeyOllamaAPIKey, KeyOllamaBaseURL, KeyOllamaModel,
		KeyOpenAIAPIKey, KeyOpenAIBaseURL, KeyOpenAIModel,
		KeyAnthropicAPIKey, KeyAnthropicBaseURL, KeyAnthropicModel,
	} {
		_ = v.BindEnv(key)
	}

	return Config{
		LogDir:             v.GetString(KeyLogDir),
		ScriptDir:          v.GetString(KeyScriptDir),
		ProviderPreference: v.GetString(KeyProviderPreference),
		EngineerName:       v.GetString(KeyEngineerName),
		OllamaAPIKey:       v.GetString(KeyOllamaAPIKey),
		OllamaBaseURL:      v.GetString(KeyOllamaBaseURL),
		OllamaModel:        v.GetString(KeyOllamaModel),
		OpenAIAPIKey:       v.GetString(KeyOpenAIAPIKey),
		OpenAIBaseURL:      v.GetString(KeyOpenAIBaseURL),
		OpenAIModel:        v.GetString(KeyOpenAIModel),
		AnthropicAPIKey:    v.GetString(KeyAnthropicAPIKey),
		AnthropicBaseURL:   v.GetString(KeyAnthropicBaseURL),
		AnthropicModel:     v.GetString(KeyAnthropicModel),
	}
}
