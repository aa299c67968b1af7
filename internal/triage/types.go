package triage

import (
	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/symptom"
)

// Tier is the per-symptom severity tier.
type Tier string

const (
	TierMild     Tier = "mild"
	TierModerate Tier = "moderate"
	TierCritical Tier = "critical"
)

// RiskTier is the aggregate triage signal. It is computed independently of
// the per-symptom tiers and may disagree with them.
type RiskTier string

const (
	RiskLow      RiskTier = "LOW"
	RiskModerate RiskTier = "MODERATE"
	RiskHigh     RiskTier = "HIGH"
)

// ImageQuality is the optional hint supplied with an image.
type ImageQuality string

const (
	ImageQualityUnknown ImageQuality = "unknown"
	ImageQualityGood    ImageQuality = "good"
)

// Valid reports whether q is one of the accepted hints. Empty means unknown.
func (q ImageQuality) Valid() bool {
	switch q {
	case "", ImageQualityUnknown, ImageQualityGood:
		return true
	}
	return false
}

// NoConfidence is returned by the scorer when there is nothing to score.
const NoConfidence = 0.0

// Empty-intake messages of the presentation generators.
const (
	NoPriorities = "No symptoms to prioritize"
	NoInsights   = "Select symptoms to see pattern insights"
)

// NothingToAnalyze is the message carried by an assessment of an empty intake.
const NothingToAnalyze = "Select symptoms to begin analysis and see immediate remedies"

// Severity is the classification of a single symptom.
type Severity struct {
	Tier       Tier   `json:"level"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
	Emoji      string `json:"emoji"`
}

// SymptomSeverity pairs a parsed label with its severity.
type SymptomSeverity struct {
	Label    symptom.Label `json:"label"`
	Severity Severity      `json:"severity"`
}

// MatchResult is the outcome of weighted condition matching.
type MatchResult struct {
	ConditionID string  `json:"conditionId,omitempty"`
	Score       float64 `json:"score"`
	Matched     bool    `json:"matched"`
}

// RiskAssessment is the coarse triage tier with the counts behind it.
// MildCount can go negative when one label satisfies both keyword lists.
type RiskAssessment struct {
	Tier          RiskTier `json:"tier"`
	CriticalCount int      `json:"criticalCount"`
	ModerateCount int      `json:"moderateCount"`
	MildCount     int      `json:"mildCount"`
	Description   string   `json:"description"`
	Color         string   `json:"color"`
	Emoji         string   `json:"emoji"`
}

// Priority is one row of the priority ranking.
type Priority struct {
	Symptom    string `json:"symptom"`
	Level      int    `json:"priorityLevel"`
	Tier       Tier   `json:"tier"`
	Color      string `json:"color"`
	Emoji      string `json:"emoji"`
	Action     string `json:"actionGuide"`
	Details    string `json:"details"`
	Percentage int    `json:"severityPercentage"`
}

// PriorityRanking is the ranked symptom list. An empty intake yields Empty
// with Message and no items.
type PriorityRanking struct {
	Empty   bool       `json:"empty"`
	Message string     `json:"message,omitempty"`
	Items   []Priority `json:"items"`
}

// SystemImpact is the aggregated severity of one body system.
type SystemImpact struct {
	System      string  `json:"system"`
	Emoji       string  `json:"emoji"`
	Score       int     `json:"score"`
	Normalized  float64 `json:"normalized"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

// BodySystemImpact lists systems with a non-zero score in fixed system order.
type BodySystemImpact struct {
	Empty   bool           `json:"empty"`
	Message string         `json:"message,omitempty"`
	Systems []SystemImpact `json:"systems"`
}

// Phase is one step of a recovery curve.
type Phase struct {
	Day         string `json:"day"`
	Status      string `json:"status"`
	Percentage  int    `json:"percentage"`
	Description string `json:"description"`
}

// RecoveryEstimate is the severity-bucketed recovery curve.
type RecoveryEstimate struct {
	Empty           bool    `json:"empty"`
	Days            int     `json:"recoveryDays"`
	AverageSeverity float64 `json:"avgSeverity"`
	Timeline        []Phase `json:"timeline"`
}

// Insight is a pattern-based advisory card.
type Insight struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
}

// InsightSet holds the advisory cards that fired. An empty intake yields
// Empty with Message and no cards, never the default card.
type InsightSet struct {
	Empty   bool      `json:"empty"`
	Message string    `json:"message,omitempty"`
	Items   []Insight `json:"items"`
}

// Input is one analysis request as handed over by the integration layer.
type Input struct {
	Symptoms     []string     `json:"symptoms"`
	HasImage     bool         `json:"hasImage"`
	HasAudio     bool         `json:"hasAudio"`
	ImageQuality ImageQuality `json:"imageQuality,omitempty"`
}

// Assessment is the full result of one analysis. Risk, per-symptom severity
// and confidence are reported side by side and never reconciled.
type Assessment struct {
	Empty            bool                 `json:"empty"`
	Message          string               `json:"message,omitempty"`
	Symptoms         []symptom.Label      `json:"symptoms"`
	Emergency        bool                 `json:"emergency"`
	Alerts           []string             `json:"alerts"`
	EmergencyMessage string               `json:"emergencyMessage,omitempty"`
	Match            MatchResult          `json:"match"`
	Condition        *catalogue.Condition `json:"condition,omitempty"`
	Severities       []SymptomSeverity    `json:"severities"`
	Confidence       float64              `json:"confidence"`
	ConfidenceLevel  string               `json:"confidenceLevel"`
	Risk             RiskAssessment       `json:"risk"`
	Priorities       PriorityRanking      `json:"priorities"`
	BodySystems      BodySystemImpact     `json:"bodySystems"`
	Recovery         RecoveryEstimate     `json:"recovery"`
	Insights         InsightSet           `json:"insights"`
	Remedy           string               `json:"immediateRemedy,omitempty"`
}

// Primary is the headline text for display: the emergency notice when any red
// flag fired, otherwise the matched condition name (or empty).
func (a Assessment) Primary() string {
	if a.Emergency {
		return a.EmergencyMessage
	}
	if a.Condition != nil {
		return a.Condition.Name
	}
	return ""
}
