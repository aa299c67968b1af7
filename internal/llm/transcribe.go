package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// WhisperTranscriber implements Transcriber with the OpenAI audio API.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber creates a transcriber sharing the OpenAI settings.
func NewWhisperTranscriber(cfg OpenAIConfig) (*WhisperTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required for transcription")
	}
	model := cfg.TranscriptionModel
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperTranscriber{client: newOpenAIClient(cfg), model: model}, nil
}

func (w *WhisperTranscriber) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("empty audio")
	}
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", openAIFailure(err)
	}
	return resp.Text, nil
}
