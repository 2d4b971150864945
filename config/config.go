// Package config resolves which LLM provider the CLI talks to. The
// configuration is read once at startup and passed explicitly to whoever
// needs it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLocalURL   = "http://localhost:11434/v1/"
	DefaultHostedURL  = "https://models.github.ai/inference"
	DefaultHostedKey  = "GITHUB_TOKEN"
	localPlaceholder  = "nonsense" // Ollama ignores the key but clients require one
	defaultChatModel  = "openai/gpt-4o-mini"
	defaultLocalChat  = "llama3.2"
	defaultEmbedModel = "nomic-embed-text"
	defaultDimensions = 1024
)

// GetConfigDir returns $CLASH_CONFIG_DIR or ~/.config/clash.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("CLASH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clash"), nil
}

// GetConfigFilePath returns the path of config.yml inside the config dir.
func GetConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

// LoadConfig reads the config file at path. A missing file yields the
// hosted provider defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{Provider: ProviderHosted}, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderHosted
	}
	return &cfg, nil
}

// SaveConfig writes cfg to path, creating the directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides file values with MODE and BASE_URL. MODE accepts the
// provider names as well as "ollama" and "github".
func (c *Config) ApplyEnv(getenv func(string) string) error {
	switch mode := getenv("MODE"); mode {
	case "":
	case "ollama", string(ProviderLocal):
		c.Provider = ProviderLocal
	case "github", string(ProviderHosted):
		c.Provider = ProviderHosted
	default:
		return fmt.Errorf("invalid MODE %q: use local (ollama) or hosted (github)", mode)
	}
	if u := getenv("BASE_URL"); u != "" {
		c.BaseURL = u
	}
	return nil
}

// Resolve fills in provider defaults and reads the API key from the
// environment.
func (c *Config) Resolve(getenv func(string) string) (Settings, error) {
	s := Settings{
		Provider:   c.Provider,
		BaseURL:    c.BaseURL,
		ChatModel:  c.ChatModel,
		EmbedModel: c.EmbedModel,
		Dimensions: c.Dimensions,
	}
	if s.EmbedModel == "" {
		s.EmbedModel = defaultEmbedModel
	}
	if s.Dimensions == 0 {
		s.Dimensions = defaultDimensions
	}

	switch c.Provider {
	case ProviderLocal:
		if s.BaseURL == "" {
			s.BaseURL = getenv("OLLAMA_URL")
		}
		if s.BaseURL == "" {
			s.BaseURL = DefaultLocalURL
		}
		if s.ChatModel == "" {
			s.ChatModel = defaultLocalChat
		}
		s.APIKey = localPlaceholder
		if c.APIKeySource != "" && getenv(c.APIKeySource) != "" {
			s.APIKey = getenv(c.APIKeySource)
		}
	case ProviderHosted:
		if s.BaseURL == "" {
			s.BaseURL = getenv("GITHUB_API_URL")
		}
		if s.BaseURL == "" {
			s.BaseURL = DefaultHostedURL
		}
		if s.ChatModel == "" {
			s.ChatModel = defaultChatModel
		}
		source := c.APIKeySource
		if source == "" {
			source = DefaultHostedKey
		}
		s.APIKey = getenv(source)
		if s.APIKey == "" {
			return Settings{}, fmt.Errorf("hosted provider needs an API key in $%s", source)
		}
	default:
		return Settings{}, fmt.Errorf("invalid provider %q: use local or hosted", c.Provider)
	}
	return s, nil
}

// Load reads the default config file, applies the environment and resolves it.
func Load() (Settings, error) {
	path, err := GetConfigFilePath()
	if err != nil {
		return Settings{}, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Settings{}, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Settings{}, err
	}
	return cfg.Resolve(os.Getenv)
}
