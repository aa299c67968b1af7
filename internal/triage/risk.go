package triage

import "github.com/Skufu/GoTriage/internal/symptom"

const moderateRiskMinimum = 2

// RiskAggregator derives the coarse LOW/MODERATE/HIGH tier.
type RiskAggregator struct {
	critical []string
	moderate []string
	profiles map[RiskTier]RiskProfile
}

// NewRiskAggregator returns an aggregator over the two keyword lists.
func NewRiskAggregator(critical, moderate []string, profiles map[RiskTier]RiskProfile) *RiskAggregator {
	return &RiskAggregator{critical: critical, moderate: moderate, profiles: profiles}
}

// Assess counts list entries found in the joined selection text. Any critical
// hit is HIGH; otherwise two or more moderate hits is MODERATE; else LOW.
func (r *RiskAggregator) Assess(labels []symptom.Label) RiskAssessment {
	text := symptom.Text(labels)
	critical := countContained(text, r.critical)
	moderate := countContained(text, r.moderate)

	tier := RiskLow
	switch {
	case critical > 0:
		tier = RiskHigh
	case moderate >= moderateRiskMinimum:
		tier = RiskModerate
	}

	p := r.profiles[tier]
	return RiskAssessment{
		Tier:          tier,
		CriticalCount: critical,
		ModerateCount: moderate,
		MildCount:     len(labels) - critical - moderate,
		Description:   p.Description,
		Color:         p.Color,
		Emoji:         p.Emoji,
	}
}
