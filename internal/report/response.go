// Package report formats assessments as plain text: the consultation
// responses shown to the user and the downloadable text report.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/symptom"
	"github.com/Skufu/GoTriage/internal/triage"
)

// Analysis kinds appended to an LLM narrative's confidence line.
const (
	ImageAnalysis   = "Image Analysis"
	SymptomAnalysis = "Symptom Analysis"
)

var professionalTemplate = template.Must(template.New("professional").Parse(`MEDICAL ASSESSMENT

Based on your symptoms: {{.Symptoms}}

URGENCY: {{.Urgency}}
CONDITION: {{.Condition}}
TREATMENT: {{.Advice}}
IMMEDIATE: {{.Remedy}}

CONFIDENCE: {{.Level}} ({{.Percent}}%)
`))

var fallbackTemplate = template.Must(template.New("fallback").Parse(`MEDICAL ASSESSMENT

Based on: {{.Case}}

URGENCY: Self-care recommended
CONDITION: General symptom assessment
TREATMENT: Rest, hydration, symptom monitoring
IMMEDIATE: OTC pain relief if needed, avoid triggers

CONFIDENCE: {{.Percent}}% - General assessment`))

// ProfessionalResponse renders the catalogue-backed response for a matched
// condition.
func ProfessionalResponse(cond catalogue.Condition, labels []symptom.Label, confidence float64) string {
	return render(professionalTemplate, map[string]any{
		"Symptoms":  strings.Join(symptom.Names(labels), ", "),
		"Urgency":   cond.Urgency,
		"Condition": cond.Name,
		"Advice":    cond.Advice,
		"Remedy":    cond.Remedy,
		"Level":     triage.ConfidenceLevel(confidence),
		"Percent":   truncPercent(confidence),
	})
}

// FallbackResponse is the generic self-care response used when no narrative
// could be produced.
func FallbackResponse(caseText string, confidence float64) string {
	return render(fallbackTemplate, map[string]any{
		"Case":    caseText,
		"Percent": roundPercent(confidence),
	})
}

// WithConfidence appends the confidence line to an LLM narrative.
func WithConfidence(narrative string, confidence float64, kind string) string {
	return fmt.Sprintf("%s\n\nCONFIDENCE: %d%% (%s)", narrative, roundPercent(confidence), kind)
}

// Disclaimer returns the note matching the confidence band.
func Disclaimer(confidence float64) string {
	switch {
	case confidence < 0.4:
		return "⚠️ NOTE: Low confidence assessment. Multiple conditions possible. Professional evaluation strongly recommended."
	case confidence < 0.7:
		return "ℹ️ NOTE: Moderate confidence. Consider professional confirmation if symptoms persist."
	default:
		return "✅ NOTE: High confidence assessment based on clear symptom patterns."
	}
}

// WithDisclaimer strips markdown emphasis from analysis and appends the
// confidence disclaimer.
func WithDisclaimer(analysis string, confidence float64) string {
	analysis = strings.ReplaceAll(analysis, "*", "")
	return analysis + "\n\n" + Disclaimer(confidence)
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	// Templates are static and data is a plain map; Execute cannot fail.
	_ = t.Execute(&buf, data)
	return buf.String()
}

// truncPercent drops the fraction, as the catalogue response always has.
func truncPercent(score float64) int {
	return int(score * 100)
}

func roundPercent(score float64) int {
	return int(score*100 + 0.5)
}
