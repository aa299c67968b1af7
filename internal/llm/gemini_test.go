package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(testSchema.Definition)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"urgency"}, s.Required)

	urgency := s.Properties["urgency"]
	require.NotNil(t, urgency)
	assert.Equal(t, genai.TypeString, urgency.Type)
	assert.Equal(t, []string{"low", "high"}, urgency.Enum)

	notes := s.Properties["notes"]
	require.NotNil(t, notes)
	assert.Equal(t, genai.TypeArray, notes.Type)
	assert.Equal(t, genai.TypeString, notes.Items.Type)
}

func TestGeminiSchemaDecodedJSON(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "object", "required": []any{"a", 1, "b"}})
	assert.Equal(t, []string{"a", "b"}, s.Required)
}

func TestGeminiFailure(t *testing.T) {
	assert.Equal(t, FailureRateLimited, FailureOf(geminiFailure(genai.APIError{Code: 429})))
	assert.Equal(t, FailureUnavailable, FailureOf(geminiFailure(genai.APIError{Code: 503})))
	assert.Equal(t, FailureUnavailable, FailureOf(geminiFailure(errors.New("dial tcp"))))
}

func TestGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{})
	assert.Error(t, err)
}
