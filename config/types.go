package config

// Provider selects which OpenAI-compatible endpoint the collaborators use.
type Provider string

const (
	ProviderLocal  Provider = "local"  // Ollama on this machine
	ProviderHosted Provider = "hosted" // GitHub Models
)

// Config is the on-disk configuration. Empty fields fall back to the
// provider defaults.
type Config struct {
	Provider     Provider `yaml:"provider"`
	BaseURL      string   `yaml:"base_url,omitempty"`
	APIKeySource string   `yaml:"api_key_source,omitempty"` // environment variable holding the key
	ChatModel    string   `yaml:"chat_model,omitempty"`
	EmbedModel   string   `yaml:"embed_model,omitempty"`
	Dimensions   int      `yaml:"dimensions,omitempty"`
}

// Settings is a fully resolved configuration handed to collaborators.
type Settings struct {
	Provider   Provider
	BaseURL    string
	APIKey     string
	ChatModel  string
	EmbedModel string
	Dimensions int
}
