package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	cfg := DefaultConfig()
	for env := range cfg.overrides() {
		t.Setenv(env, "")
	}
	for _, v := range vendorKeys {
		t.Setenv(v.env, "")
	}
	t.Setenv("TRIAGE_LLM_TIMEOUT", "")
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearLLMEnv(t)
	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "whisper-1", cfg.OpenAI.TranscriptionModel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Error(t, cfg.Validate())
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("TRIAGE_LLM_PROVIDER", "anthropic")
	t.Setenv("TRIAGE_ANTHROPIC_API_KEY", "k")
	t.Setenv("TRIAGE_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("TRIAGE_OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("TRIAGE_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvDiscovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENAI_API_KEY", "o")
	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "a", cfg.Anthropic.APIKey)

	t.Setenv("GEMINI_API_KEY", "g")
	cfg = ConfigFromEnv()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "o", cfg.OpenAI.APIKey, "openai key stays available for transcription")
	assert.NoError(t, cfg.Validate())
}

func TestValidateUnknownProvider(t *testing.T) {
	assert.Error(t, Config{Provider: "carrier-pigeon"}.Validate())
	assert.NoError(t, Config{Provider: ProviderMock}.Validate())
}
