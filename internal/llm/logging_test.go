package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProvider(t *testing.T) {
	var buf bytes.Buffer
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		failing(FailureRateLimited),
	)
	p := WithLogging(mock, log.New(&buf, "", 0))

	_, err := p.Generate(context.Background(), Request{Purpose: PurposeImage, Case: "secret symptoms", Image: &Image{}})
	require.NoError(t, err)
	_, err = p.Generate(context.Background(), Request{Purpose: PurposeSymptoms})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "purpose=image model=mock")
	assert.Contains(t, out, "image=true tokens_in=0 tokens_out=0")
	assert.Contains(t, out, `purpose=symptoms model=mock`)
	assert.Contains(t, out, `image=false failure="rate limited"`)
	assert.NotContains(t, out, "secret symptoms")
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: "nope"}, nil)
	assert.Error(t, err)

	_, err = NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil)
	assert.Error(t, err)

	p, err = NewProvider(context.Background(), Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "k", Model: "gpt-4o"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}
