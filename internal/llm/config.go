package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

// Config selects the consultation model. The OpenAI key also enables voice
// note transcription whichever provider writes the narrative.
type Config struct {
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single consultation, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey             string
	Model              string
	TranscriptionModel string
	BaseURL            string // any OpenAI-compatible endpoint
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderOpenAI,
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini", TranscriptionModel: "whisper-1"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry:     RetryConfig{Attempts: 3, Wait: time.Second, MaxWait: 8 * time.Second},
		Timeout:   30 * time.Second,
	}
}

// vendorKeys lists the standard vendor variables in discovery order.
var vendorKeys = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
}

func (c *Config) apiKey(provider string) *string {
	switch provider {
	case ProviderAnthropic:
		return &c.Anthropic.APIKey
	case ProviderGemini:
		return &c.Gemini.APIKey
	default:
		return &c.OpenAI.APIKey
	}
}

// overrides binds the TRIAGE_* variables to their fields.
func (c *Config) overrides() map[string]*string {
	return map[string]*string{
		"TRIAGE_LLM_PROVIDER":               &c.Provider,
		"TRIAGE_ANTHROPIC_API_KEY":          &c.Anthropic.APIKey,
		"TRIAGE_ANTHROPIC_MODEL":            &c.Anthropic.Model,
		"TRIAGE_OPENAI_API_KEY":             &c.OpenAI.APIKey,
		"TRIAGE_OPENAI_MODEL":               &c.OpenAI.Model,
		"TRIAGE_OPENAI_TRANSCRIPTION_MODEL": &c.OpenAI.TranscriptionModel,
		"TRIAGE_OPENAI_BASE_URL":            &c.OpenAI.BaseURL,
		"TRIAGE_GEMINI_API_KEY":             &c.Gemini.APIKey,
		"TRIAGE_GEMINI_MODEL":               &c.Gemini.Model,
	}
}

// ConfigFromEnv starts from DefaultConfig, picks up every standard vendor
// key (the first one found in Gemini, OpenAI, Anthropic order selects the
// provider) and then applies TRIAGE_* overrides.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	selected := false
	for _, v := range vendorKeys {
		k := os.Getenv(v.env)
		if k == "" {
			continue
		}
		*cfg.apiKey(v.provider) = k
		if !selected {
			cfg.Provider = v.provider
			selected = true
		}
	}

	for env, dst := range cfg.overrides() {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}

	if t := os.Getenv("TRIAGE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
		if *c.apiKey(c.Provider) == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
