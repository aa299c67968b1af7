package report

import "strings"

// Summary is the structured view of a free-text assessment.
type Summary struct {
	Symptoms   string `json:"symptoms"`
	Urgency    string `json:"urgency"`
	Condition  string `json:"condition"`
	Treatment  string `json:"treatment"`
	Immediate  string `json:"immediate"`
	Confidence string `json:"confidence"`
}

func defaultSummary() Summary {
	return Summary{
		Urgency:    "Moderate - See doctor if symptoms worsen",
		Condition:  "General Symptom Assessment",
		Treatment:  "Rest, hydrate, and monitor symptoms",
		Immediate:  "Rest, hydrate, and monitor your symptoms",
		Confidence: "Not assessed",
	}
}

var summaryFields = []struct {
	prefix string
	set    func(*Summary, string)
}{
	{"Based on your symptoms:", func(s *Summary, v string) { s.Symptoms = v }},
	{"URGENCY:", func(s *Summary, v string) { s.Urgency = v }},
	{"CONDITION:", func(s *Summary, v string) { s.Condition = v }},
	{"TREATMENT:", func(s *Summary, v string) { s.Treatment = v }},
	{"RECOMMENDATIONS:", func(s *Summary, v string) { s.Treatment = v }},
	{"IMMEDIATE:", func(s *Summary, v string) { s.Immediate = v }},
	{"URGENT CARE:", func(s *Summary, v string) { s.Immediate = v }},
	{"CONFIDENCE:", func(s *Summary, v string) { s.Confidence = v }},
}

// Summarize pulls the labelled lines out of a consultation response. Labels
// the text does not carry keep their defaults; every value is cleaned for
// ASCII output.
func Summarize(text string) Summary {
	s := defaultSummary()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, f := range summaryFields {
			if v, ok := strings.CutPrefix(line, f.prefix); ok {
				if v = CleanText(v); v != "" {
					f.set(&s, v)
				}
				break
			}
		}
	}
	return s
}
