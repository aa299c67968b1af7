package triage

import (
	"math"

	"github.com/Skufu/GoTriage/internal/symptom"
)

const (
	confidenceBase          = 0.5
	confidencePerSymptom    = 0.1
	confidenceSymptomCap    = 0.3
	confidencePerPattern    = 0.15
	confidenceMultiPattern  = 0.1
	confidenceImageGood     = 0.3
	confidenceImage         = 0.2
	confidenceAudio         = 0.15
	confidenceSpecific      = 0.1
	confidenceMax           = 0.95
	patternMinMembers       = 2
	multiPatternMinPatterns = 2
)

// ConfidenceInput is everything the scorer looks at.
type ConfidenceInput struct {
	Labels       []symptom.Label
	HasImage     bool
	HasAudio     bool
	ImageQuality ImageQuality
}

// ConfidenceScorer produces the bounded evidence score for an assessment.
type ConfidenceScorer struct {
	patterns [][]string
	specific []string
}

// NewConfidenceScorer returns a scorer over the given combination patterns
// and high-signal symptoms.
func NewConfidenceScorer(patterns [][]string, specific []string) *ConfidenceScorer {
	return &ConfidenceScorer{patterns: patterns, specific: specific}
}

// Score is additive and clamped at 0.95. With no symptoms and no media it
// returns NoConfidence. Pattern and specific-symptom checks are substring
// searches over the space-joined keys, so "cold" is found in
// "cold extremities".
func (s *ConfidenceScorer) Score(in ConfidenceInput) float64 {
	if len(in.Labels) == 0 && !in.HasImage && !in.HasAudio {
		return NoConfidence
	}

	score := confidenceBase

	if n := len(in.Labels); n > 0 {
		score += math.Min(confidencePerSymptom*float64(n), confidenceSymptomCap)

		text := symptom.Text(in.Labels)
		matched := 0
		for _, p := range s.patterns {
			if countContained(text, p) >= patternMinMembers {
				matched++
				score += confidencePerPattern
			}
		}
		if matched >= multiPatternMinPatterns {
			score += confidenceMultiPattern
		}

		if containsAny(text, s.specific) {
			score += confidenceSpecific
		}
	}

	if in.HasImage {
		if in.ImageQuality == ImageQualityGood {
			score += confidenceImageGood
		} else {
			score += confidenceImage
		}
	}
	if in.HasAudio {
		score += confidenceAudio
	}

	return math.Min(score, confidenceMax)
}

// ConfidenceLevel buckets a score for display: HIGH from 0.8, MODERATE from
// 0.6, LOW below.
func ConfidenceLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "HIGH"
	case score >= 0.6:
		return "MODERATE"
	default:
		return "LOW"
	}
}
