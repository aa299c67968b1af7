// Package triage turns a set of user-selected symptom labels into an
// assessment: emergency gate, weighted condition match, per-symptom severity,
// a confidence score, a coarse risk tier and the dashboard records built
// from them.
package triage

import (
	"errors"
	"fmt"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/symptom"
)

// Engine runs the full analysis pipeline. All tables are read-only after
// construction, so one Engine may be shared across goroutines.
type Engine struct {
	catalogue  *catalogue.Catalogue
	rules      Rules
	emergency  *EmergencyDetector
	matcher    *Matcher
	severity   *SeverityClassifier
	confidence *ConfidenceScorer
	risk       *RiskAggregator
	systems    *BodySystemMapper
}

// NewEngine validates rules and wires the pipeline components.
func NewEngine(cat *catalogue.Catalogue, rules Rules) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("triage: nil catalogue")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("triage: invalid rules: %w", err)
	}
	return &Engine{
		catalogue:  cat,
		rules:      rules,
		emergency:  NewEmergencyDetector(rules.RedFlags),
		matcher:    NewMatcher(cat, rules.MatchThreshold),
		severity:   NewSeverityClassifier(rules.SeverityRules, rules.DefaultSeverity),
		confidence: NewConfidenceScorer(rules.ConfidencePatterns, rules.SpecificSymptoms),
		risk:       NewRiskAggregator(rules.RiskCritical, rules.RiskModerate, rules.RiskProfiles),
		systems:    NewBodySystemMapper(rules),
	}, nil
}

// Catalogue returns the catalogue the engine matches against.
func (e *Engine) Catalogue() *catalogue.Catalogue {
	return e.catalogue
}

// Analyze runs the pipeline on one intake. It never fails: an empty intake
// produces an assessment with Empty set and every section in its sentinel
// state, and an emergency still computes the routine sections so callers can
// show them below the notice.
func (e *Engine) Analyze(in Input) Assessment {
	labels := symptom.ParseAll(in.Symptoms)

	a := Assessment{
		Symptoms:   labels,
		Alerts:     e.emergency.Detect(labels),
		Severities: e.severity.ClassifyAll(labels),
	}
	if len(a.Alerts) > 0 {
		a.Emergency = true
		a.EmergencyMessage = EmergencyMessage(a.Alerts)
	}
	if len(labels) == 0 {
		a.Empty = true
		a.Message = NothingToAnalyze
	}

	a.Match = e.matcher.Match(labels)
	if a.Match.Matched {
		if cond, ok := e.catalogue.Lookup(a.Match.ConditionID); ok {
			a.Condition = &cond
		}
	}

	a.Confidence = e.confidence.Score(ConfidenceInput{
		Labels:       labels,
		HasImage:     in.HasImage,
		HasAudio:     in.HasAudio,
		ImageQuality: in.ImageQuality,
	})
	a.ConfidenceLevel = ConfidenceLevel(a.Confidence)
	a.Risk = e.risk.Assess(labels)

	a.Priorities = Prioritize(a.Severities, e.rules.PriorityGuides)
	a.BodySystems = e.systems.Map(a.Severities)
	a.Recovery = EstimateRecovery(a.Severities, e.rules.RecoveryCurves)
	a.Insights = GenerateInsights(labels, e.rules.Insights, e.rules.DefaultInsight)

	a.Remedy = e.rules.FallbackRemedy
	if a.Condition != nil && a.Condition.Remedy != "" {
		a.Remedy = a.Condition.Remedy
	}
	return a
}
