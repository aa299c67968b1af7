// Package advisor produces the user-facing consultation for an intake: the
// emergency notice, a catalogue response for a confident match, or a model
// narrative, with a templated fallback whenever the model cannot answer.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Skufu/GoTriage/internal/llm"
	"github.com/Skufu/GoTriage/internal/report"
	"github.com/Skufu/GoTriage/internal/symptom"
	"github.com/Skufu/GoTriage/internal/triage"
)

// EmergencyHeadline is shown above the emergency notice.
const EmergencyHeadline = "EMERGENCY DETECTED - Seek immediate care"

// Source names where a consultation's response came from.
type Source string

const (
	SourceEmergency Source = "emergency"
	SourceCatalogue Source = "catalogue"
	SourceLLM       Source = "llm"
	SourceFallback  Source = "fallback"
)

// Config holds generation settings for the narrative call.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
		Timeout:     30 * time.Second,
	}
}

// Audio is a recorded voice note.
type Audio struct {
	Filename string
	Data     []byte
}

// Request is one consultation.
type Request struct {
	Symptoms     []string
	Image        *llm.Image
	ImageQuality triage.ImageQuality
	Audio        *Audio
}

// Consultation is the outcome of Consult.
type Consultation struct {
	Assessment triage.Assessment `json:"assessment"`
	Headline   string            `json:"headline"`
	CaseText   string            `json:"caseText"`
	Response   string            `json:"response"`
	Disclaimer string            `json:"disclaimer,omitempty"`
	Source     Source            `json:"source"`
	Degraded   string            `json:"degraded,omitempty"`
}

// Observer is notified once per consultation.
type Observer interface {
	ObserveConsultation(source string, d time.Duration)
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithProvider enables model narratives.
func WithProvider(p llm.Provider) Option {
	return func(a *Advisor) { a.provider = p }
}

// WithTranscriber enables voice notes.
func WithTranscriber(t llm.Transcriber) Option {
	return func(a *Advisor) { a.transcriber = t }
}

// WithObserver reports consultation outcomes.
func WithObserver(o Observer) Option {
	return func(a *Advisor) { a.observer = o }
}

// WithLogger replaces the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Advisor) { a.logger = l }
}

// Advisor runs consultations. It is safe for concurrent use when its
// provider and transcriber are.
type Advisor struct {
	engine      *triage.Engine
	cfg         Config
	provider    llm.Provider
	transcriber llm.Transcriber
	observer    Observer
	logger      *log.Logger
}

// New creates an Advisor over engine. Without a provider every unmatched
// intake gets the fallback response.
func New(engine *triage.Engine, cfg Config, opts ...Option) *Advisor {
	a := &Advisor{engine: engine, cfg: cfg, logger: log.Default()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Consult never returns an error: model and transcription failures are
// recorded in Degraded and the response falls back to the template.
func (a *Advisor) Consult(ctx context.Context, req Request) Consultation {
	start := time.Now()
	c := a.consult(ctx, req)
	if a.observer != nil {
		a.observer.ObserveConsultation(string(c.Source), time.Since(start))
	}
	return c
}

func (a *Advisor) consult(ctx context.Context, req Request) Consultation {
	hasImage := req.Image != nil && len(req.Image.Data) > 0
	assessment := a.engine.Analyze(triage.Input{
		Symptoms:     req.Symptoms,
		HasImage:     hasImage,
		HasAudio:     req.Audio != nil,
		ImageQuality: req.ImageQuality,
	})

	c := Consultation{Assessment: assessment, Headline: assessment.Primary()}
	if assessment.Emergency {
		c.Headline = EmergencyHeadline
		c.Response = assessment.EmergencyMessage
		c.Source = SourceEmergency
		return c
	}

	c.CaseText = caseText(assessment)
	if req.Audio != nil {
		c.CaseText = a.appendTranscript(ctx, c.CaseText, req.Audio)
	}
	c.Disclaimer = report.Disclaimer(assessment.Confidence)

	if assessment.Condition != nil && !hasImage {
		c.Response = report.ProfessionalResponse(*assessment.Condition, assessment.Symptoms, assessment.Confidence)
		c.Source = SourceCatalogue
		return c
	}

	if a.provider == nil {
		c.Response = report.FallbackResponse(c.CaseText, assessment.Confidence)
		c.Source = SourceFallback
		c.Degraded = "no model configured"
		return c
	}

	var image *llm.Image
	if hasImage {
		image = req.Image
	}
	n, err := a.narrate(ctx, c.CaseText, image)
	if err != nil {
		a.logger.Printf("advisor: narrative failed, using fallback: %v", err)
		c.Response = report.FallbackResponse(c.CaseText, assessment.Confidence)
		c.Source = SourceFallback
		c.Degraded = degradedReason(err)
		return c
	}

	kind := report.SymptomAnalysis
	if hasImage {
		kind = report.ImageAnalysis
	}
	c.Response = report.WithDisclaimer(report.WithConfidence(n.String(), assessment.Confidence, kind), assessment.Confidence)
	c.Source = SourceLLM
	return c
}

func (a *Advisor) narrate(ctx context.Context, caseText string, image *llm.Image) (narrative, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	purpose := llm.PurposeSymptoms
	if image != nil {
		purpose = llm.PurposeImage
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		Purpose:     purpose,
		System:      systemPrompt,
		Case:        caseMessage(caseText),
		Image:       image,
		Schema:      ConsultationSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return narrative{}, fmt.Errorf("generate consultation: %w", err)
	}

	var n narrative
	if err := json.Unmarshal(resp.Content, &n); err != nil {
		return narrative{}, fmt.Errorf("parse consultation: %w", err)
	}
	return n, nil
}

func (a *Advisor) appendTranscript(ctx context.Context, caseText string, audio *Audio) string {
	var text string
	var err error
	if a.transcriber == nil {
		err = fmt.Errorf("no transcriber configured")
	} else {
		text, err = a.transcriber.Transcribe(ctx, audio.Filename, audio.Data)
	}

	if err != nil {
		a.logger.Printf("advisor: transcription failed: %v", err)
		if caseText == "" {
			return "Audio transcription failed: " + err.Error()
		}
		return caseText + ". Audio transcription failed: " + err.Error()
	}

	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return caseText
	case caseText == "":
		return text
	default:
		return caseText + ". " + text
	}
}

// degradedReason names the vendor failure class rather than echoing vendor
// error text to callers.
func degradedReason(err error) string {
	if f := llm.FailureOf(err); f != "" {
		return "model " + string(f)
	}
	return err.Error()
}

func caseText(a triage.Assessment) string {
	if len(a.Symptoms) == 0 {
		return ""
	}
	return "Patient reports: " + strings.Join(symptom.Names(a.Symptoms), ", ")
}
