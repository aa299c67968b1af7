package triage

import (
	"strings"

	"github.com/Skufu/GoTriage/internal/symptom"
)

// SeverityClassifier assigns each symptom a tier by keyword substring.
type SeverityClassifier struct {
	rules    []SeverityRule
	fallback Severity
}

// NewSeverityClassifier evaluates rules in the given order, falling back to
// def when none match.
func NewSeverityClassifier(rules []SeverityRule, def Severity) *SeverityClassifier {
	return &SeverityClassifier{rules: rules, fallback: def}
}

// Classify returns the first bucket whose keyword occurs anywhere in key.
// Substring matching is intentional: "severe head injury" also contains the
// moderate keyword "head injury" but the critical bucket is checked first.
func (c *SeverityClassifier) Classify(key string) Severity {
	for _, r := range c.rules {
		if containsAny(key, r.Keywords) {
			return r.Severity
		}
	}
	return c.fallback
}

// ClassifyAll classifies every label, keeping input order.
func (c *SeverityClassifier) ClassifyAll(labels []symptom.Label) []SymptomSeverity {
	out := make([]SymptomSeverity, len(labels))
	for i, l := range labels {
		out[i] = SymptomSeverity{Label: l, Severity: c.Classify(l.Key)}
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func countContained(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
