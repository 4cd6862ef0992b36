package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Prompts struct {
	DedupeSystem      string `toml:"dedupe_system"`
	DedupeIntro       string `toml:"dedupe_intro"`
	DedupeInstruction string `toml:"dedupe_instruction"`
	RenameSystem      string `toml:"rename_system"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ConcurrencyConfig struct {
	ExtractWorkers int `toml:"extract_workers"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Prompts     Prompts           `toml:"prompts"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Prompts: Prompts{
			DedupeSystem: "You are a helpful assistant that identifies duplicate text content from PDFs.",
			DedupeIntro:  "Here is a list of text snippets from different PDFs. Find any pairs that appear to be duplicates based on content:",
			DedupeInstruction: "Please list which files are duplicates. Phrase each answer exactly as: " +
				"File 'first.pdf' and File 'second.pdf' are duplicates. One pair per line.",
			RenameSystem: "You are a helpful assistant. Use the information below to create a creative title.",
		},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file is
// not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadSecret reads an API key from a JSON secret file of the form
// {"openai_api_key": "sk-..."}. The key name is derived from the provider.
func LoadSecret(path, provider string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file '%s': %w", path, err)
	}

	var secrets map[string]string
	if err := json.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("failed to parse secret file '%s': %w", path, err)
	}

	key := secrets[strings.ToLower(provider)+"_api_key"]
	if key == "" {
		return "", fmt.Errorf("secret file '%s' has no %s_api_key entry", path, strings.ToLower(provider))
	}

	return key, nil
}

// ResolveAPIKey fills cfg.LLM.APIKey from the first available source:
// the config file value, the secret file, then the provider's conventional
// environment variable.
func (c *Config) ResolveAPIKey(secretPath string) error {
	if c.LLM.APIKey != "" {
		return nil
	}

	if secretPath != "" {
		if _, err := os.Stat(secretPath); err == nil {
			key, err := LoadSecret(secretPath, c.LLM.Provider)
			if err != nil {
				return err
			}
			c.LLM.APIKey = key
			return nil
		}
	}

	c.LLM.APIKey = os.Getenv(envKeyFor(c.LLM.Provider))
	if c.LLM.APIKey == "" && !strings.EqualFold(c.LLM.Provider, "ollama") {
		return fmt.Errorf("no API key for provider %q: set [llm].api_key, provide a secret file, or export %s",
			c.LLM.Provider, envKeyFor(c.LLM.Provider))
	}
	return nil
}

func envKeyFor(provider string) string {
	switch strings.ToLower(provider) {
	case "claude":
		return "ANTHROPIC_API_KEY"
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}
