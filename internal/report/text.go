package report

import (
	"bytes"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/GoTriage/internal/triage"
)

const notProvided = "Not Provided"

// Input is what the text report is built from. Alerts are the red-flag
// alerts of the assessment; any alert turns the report into an emergency
// report whatever the assessment text says.
type Input struct {
	PatientName string
	Assessment  string
	Symptoms    []string
	Alerts      []string
}

// emergencySummary overrides the routine labels when red flags fired.
func emergencySummary(s Summary) Summary {
	s.Urgency = "EMERGENCY - Seek immediate medical care"
	s.Condition = "Possible medical emergency"
	s.Treatment = "Emergency medical evaluation"
	s.Immediate = triage.EmergencyCallout
	return s
}

// Report is a rendered text report.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Body        string    `json:"body"`
}

// NewReportID returns MED-YYYYMMDD-HHMMSS followed by a short random suffix so
// two reports in the same second stay distinct.
func NewReportID(now time.Time) string {
	return "MED-" + now.Format("20060102-150405") + "-" + strings.ToUpper(uuid.NewString()[:6])
}

var rule = strings.Repeat("=", 65)

var textTemplate = template.Must(template.New("text").Funcs(template.FuncMap{
	"rule": func() string { return rule },
}).Parse(`
{{rule}}
          SYMPTOM TRIAGE - MEDICAL ASSESSMENT REPORT
{{rule}}

PATIENT INFORMATION:
- Name: {{.Name}}
- Report Date: {{.Date}}
- Report ID: {{.ID}}

{{rule}}
MEDICAL ASSESSMENT:
{{rule}}

Based on your symptoms: {{.Summary.Symptoms}}

URGENCY LEVEL: {{.Summary.Urgency}}
PRIMARY CONDITION: {{.Summary.Condition}}
TREATMENT PLAN: {{.Summary.Treatment}}
IMMEDIATE ACTIONS: {{.Summary.Immediate}}
ASSESSMENT CONFIDENCE: {{.Summary.Confidence}}
{{if .Alerts}}
EMERGENCY ALERTS:
{{range .Alerts}}- {{.}}
{{end}}{{end}}
{{rule}}
SYMPTOMS ANALYSIS:
{{rule}}
{{range .Symptoms}}- {{.}}
{{else}}- None reported
{{end}}
{{rule}}
FOLLOW-UP INSTRUCTIONS:
{{rule}}
{{if .Alerts}}- Call emergency services or go to the nearest emergency department now
- Do not drive yourself and do not wait for symptoms to improve
- Bring this report and a list of your medications
{{else}}- Rest and maintain hydration
- Monitor your symptoms and temperature daily
- Return if symptoms worsen or breathing difficulties develop
{{end}}
{{rule}}
IMPORTANT DISCLAIMER:
{{rule}}
This report is for informational purposes only and not a substitute
for professional medical advice. Consult a healthcare provider for proper diagnosis.
`))

// TextReport renders the plain-text assessment report. All free text is
// cleaned to ASCII.
func TextReport(in Input, now time.Time) Report {
	name := CleanText(in.PatientName)
	if name == "" {
		name = notProvided
	}

	summary := Summarize(in.Assessment)
	symptoms := make([]string, 0, len(in.Symptoms))
	for _, s := range in.Symptoms {
		if c := CleanText(s); c != "" {
			symptoms = append(symptoms, c)
		}
	}
	if summary.Symptoms == "" && len(symptoms) > 0 {
		summary.Symptoms = strings.Join(symptoms, ", ")
	}

	var alerts []string
	for _, a := range in.Alerts {
		if c := CleanText(a); c != "" {
			alerts = append(alerts, c)
		}
	}
	if len(alerts) > 0 {
		summary = emergencySummary(summary)
	}

	id := NewReportID(now)
	var buf bytes.Buffer
	_ = textTemplate.Execute(&buf, map[string]any{
		"Name":     name,
		"Date":     now.Format("2006-01-02 15:04:05"),
		"ID":       id,
		"Summary":  summary,
		"Symptoms": symptoms,
		"Alerts":   alerts,
	})
	return Report{ID: id, GeneratedAt: now, Body: buf.String()}
}
