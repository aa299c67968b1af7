// Package llm asks a hosted model for a structured triage consultation.
// Every vendor receives the same single-turn request: the case description,
// optionally one image of the affected area, and the schema the answer must
// satisfy.
package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
)

// Provider produces one consultation answer per call.
type Provider interface {
	// Generate sends the case and returns the model output. When req.Schema
	// is set the output has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the resolved vendor model identifier.
	ModelID() string
}

// Purpose labels a request in the request log.
type Purpose string

const (
	PurposeSymptoms Purpose = "symptoms"
	PurposeImage    Purpose = "image"
)

// Request is a single consultation turn.
type Request struct {
	Purpose Purpose
	System  string
	Case    string
	Image   *Image

	// Schema is the JSON Schema the answer must conform to. When nil the
	// answer is returned as raw text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Image is an inline image sent with the case.
type Image struct {
	MIMEType string
	Data     []byte
}

func (img Image) base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

func (img Image) dataURL() string {
	return "data:" + img.MIMEType + ";base64," + img.base64()
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model answer.
type Response struct {
	Content   json.RawMessage
	Model     string
	TokensIn  int
	TokensOut int
}

// resolveModel maps a friendly model name to a vendor model ID. Unknown
// names pass through so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
