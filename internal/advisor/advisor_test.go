package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/llm"
	"github.com/Skufu/GoTriage/internal/report"
	"github.com/Skufu/GoTriage/internal/triage"
)

const goodNarrative = `{"urgency":"Low","condition":"Contact dermatitis","assessment":["Localized rash"],"recommendations":["Avoid irritant","Apply cool compress"],"urgent_care":"If swelling spreads"}`

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(context.Context, string, []byte) (string, error) {
	return f.text, f.err
}

type recordingObserver struct {
	mu      sync.Mutex
	sources []string
}

func (r *recordingObserver) ObserveConsultation(source string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, source)
}

func newTestAdvisor(t *testing.T, opts ...Option) *Advisor {
	t.Helper()
	engine, err := triage.NewEngine(catalogue.Default(), triage.DefaultRules())
	require.NoError(t, err)
	opts = append([]Option{WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return New(engine, DefaultConfig(), opts...)
}

func TestConsultEmergencySkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAdvisor(t, WithProvider(mock))

	c := a.Consult(context.Background(), Request{Symptoms: []string{"Fever", "Difficulty Breathing"}})
	assert.Equal(t, SourceEmergency, c.Source)
	assert.Equal(t, EmergencyHeadline, c.Headline)
	assert.True(t, strings.HasSuffix(c.Response, "\n\nURGENT: CALL EMERGENCY: 911"))
	assert.Contains(t, c.Response, "BREATHING DIFFICULTY")
	assert.Equal(t, 0, mock.CallCount())
}

func TestConsultCatalogueMatch(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAdvisor(t, WithProvider(mock))

	c := a.Consult(context.Background(), Request{Symptoms: []string{"Fever", "Cough", "Body Aches"}})
	assert.Equal(t, SourceCatalogue, c.Source)
	assert.Equal(t, "Influenza (Flu)", c.Headline)
	assert.Contains(t, c.Response, "CONDITION: Influenza (Flu)")
	assert.Equal(t, "Patient reports: Fever, Cough, Body Aches", c.CaseText)
	assert.Contains(t, c.Disclaimer, "High confidence")
	assert.Equal(t, 0, mock.CallCount())
}

func TestConsultImageGoesToModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodNarrative)})
	a := newTestAdvisor(t, WithProvider(mock))

	c := a.Consult(context.Background(), Request{
		Symptoms: []string{"Fever", "Cough", "Body Aches"},
		Image:    &llm.Image{MIMEType: "image/jpeg", Data: []byte("jpeg")},
	})
	require.Equal(t, SourceLLM, c.Source)
	assert.True(t, strings.HasPrefix(c.Response, "URGENCY: Low\nCONDITION: Contact dermatitis\n"))
	assert.Contains(t, c.Response, "RECOMMENDATIONS: Avoid irritant; Apply cool compress")
	assert.Contains(t, c.Response, "% (Image Analysis)\n\n")
	assert.True(t, strings.HasSuffix(c.Response, report.Disclaimer(c.Assessment.Confidence)))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, ConsultationSchema, calls[0].Schema)
	require.NotNil(t, calls[0].Image)
	assert.Equal(t, llm.PurposeImage, calls[0].Purpose)
	assert.Equal(t, "CASE: Patient reports: Fever, Cough, Body Aches", calls[0].Case)
}

func TestConsultUnmatchedGoesToModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodNarrative)})
	a := newTestAdvisor(t, WithProvider(mock))

	c := a.Consult(context.Background(), Request{Symptoms: []string{"Skin Rash"}})
	assert.Equal(t, SourceLLM, c.Source)
	assert.Contains(t, c.Response, "(Symptom Analysis)\n\n")
	assert.True(t, strings.HasSuffix(c.Response, report.Disclaimer(c.Assessment.Confidence)))
	assert.Nil(t, mock.Calls()[0].Image)
	assert.Equal(t, llm.PurposeSymptoms, mock.Calls()[0].Purpose)
}

func TestConsultModelEmphasisStripped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"urgency":"Low","condition":"**Contact** dermatitis","assessment":["*Localized* rash"],"recommendations":["Avoid irritant"],"urgent_care":"If swelling spreads"}`,
	)})
	c := newTestAdvisor(t, WithProvider(mock)).Consult(context.Background(), Request{Symptoms: []string{"Skin Rash"}})
	require.Equal(t, SourceLLM, c.Source)
	assert.Contains(t, c.Response, "CONDITION: Contact dermatitis\n")
	assert.Contains(t, c.Response, "ASSESSMENT: Localized rash\n")
	assert.NotContains(t, c.Response, "*")
}

func TestConsultModelFailureFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		resp     llm.MockResponse
		degraded string
	}{
		{"provider error", llm.MockResponse{Err: &llm.Error{Failure: llm.FailureUnavailable, Err: errors.New("upstream 502 from vendor")}}, "model unavailable"},
		{"rate limited", llm.MockResponse{Err: &llm.Error{Failure: llm.FailureRateLimited}}, "model rate limited"},
		{"unparseable", llm.MockResponse{Content: json.RawMessage(`not json`)}, "parse consultation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdvisor(t, WithProvider(llm.NewMockProvider(tt.resp)))
			c := a.Consult(context.Background(), Request{
				Symptoms: []string{"Skin Rash"},
				Image:    &llm.Image{MIMEType: "image/png", Data: []byte("png")},
			})
			assert.Equal(t, SourceFallback, c.Source)
			assert.Contains(t, c.Degraded, tt.degraded)
			assert.NotContains(t, c.Degraded, "vendor")
			assert.Contains(t, c.Response, "Based on: Patient reports: Skin Rash")
			assert.Contains(t, c.Response, "URGENCY: Self-care recommended")
		})
	}
}

func TestConsultWithoutProvider(t *testing.T) {
	c := newTestAdvisor(t).Consult(context.Background(), Request{Symptoms: []string{"Ear Pain"}})
	assert.Equal(t, SourceFallback, c.Source)
	assert.Equal(t, "no model configured", c.Degraded)
}

func TestConsultAudio(t *testing.T) {
	t.Run("transcript appended", func(t *testing.T) {
		a := newTestAdvisor(t, WithTranscriber(fakeTranscriber{text: " it started yesterday "}))
		c := a.Consult(context.Background(), Request{Symptoms: []string{"Ear Pain"}, Audio: &Audio{Filename: "a.wav", Data: []byte("x")}})
		assert.Equal(t, "Patient reports: Ear Pain. it started yesterday", c.CaseText)
		assert.InDelta(t, 0.75, c.Assessment.Confidence, 1e-9)
	})

	t.Run("transcript only", func(t *testing.T) {
		a := newTestAdvisor(t, WithTranscriber(fakeTranscriber{text: "my ear hurts"}))
		c := a.Consult(context.Background(), Request{Audio: &Audio{Filename: "a.wav", Data: []byte("x")}})
		assert.Equal(t, "my ear hurts", c.CaseText)
		assert.True(t, c.Assessment.Empty)
	})

	t.Run("failure recorded", func(t *testing.T) {
		a := newTestAdvisor(t, WithTranscriber(fakeTranscriber{err: errors.New("bad codec")}))
		c := a.Consult(context.Background(), Request{Symptoms: []string{"Ear Pain"}, Audio: &Audio{Filename: "a.wav"}})
		assert.Equal(t, "Patient reports: Ear Pain. Audio transcription failed: bad codec", c.CaseText)
	})

	t.Run("no transcriber", func(t *testing.T) {
		c := newTestAdvisor(t).Consult(context.Background(), Request{Audio: &Audio{}})
		assert.Equal(t, "Audio transcription failed: no transcriber configured", c.CaseText)
	})
}

func TestConsultObserved(t *testing.T) {
	obs := &recordingObserver{}
	a := newTestAdvisor(t, WithObserver(obs))
	a.Consult(context.Background(), Request{Symptoms: []string{"Chest Pain"}})
	a.Consult(context.Background(), Request{Symptoms: []string{"Fever"}})
	a.Consult(context.Background(), Request{Symptoms: []string{"Ear Pain"}})
	assert.Equal(t, []string{"emergency", "catalogue", "fallback"}, obs.sources)
}

func TestConsultationSchemaAcceptsNarrative(t *testing.T) {
	var n narrative
	require.NoError(t, json.Unmarshal([]byte(goodNarrative), &n))
	assert.Equal(t, "Contact dermatitis", n.Condition)
	assert.Contains(t, n.String(), "URGENT CARE: If swelling spreads")
}
