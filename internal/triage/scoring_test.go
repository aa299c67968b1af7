package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/symptom"
)

func labels(raws ...string) []symptom.Label {
	return symptom.ParseAll(raws)
}

func TestMatcher(t *testing.T) {
	m := NewMatcher(catalogue.Default(), MatchThreshold)

	tests := []struct {
		name  string
		in    []string
		id    string
		score float64
		ok    bool
	}{
		{"flu beats covid", []string{"Fever", "Cough", "Body Aches"}, "flu", 4.0, true},
		{"below threshold", []string{"Cough"}, "", 0, false},
		{"exactly threshold", []string{"Fever"}, "flu", 2.0, true},
		{"unknown symptoms weigh nothing", []string{"Glowing", "Levitation"}, "", 0, false},
		{"no match", nil, "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(labels(tt.in...))
			assert.Equal(t, tt.ok, got.Matched)
			assert.Equal(t, tt.id, got.ConditionID)
			assert.Equal(t, tt.score, got.Score)
		})
	}
}

func TestMatcherExtraSymptomsNoPenalty(t *testing.T) {
	m := NewMatcher(catalogue.Default(), MatchThreshold)
	base := m.Match(labels("Fever", "Cough", "Body Aches"))
	more := m.Match(labels("Fever", "Cough", "Body Aches", "Skin Rash", "Ear Pain"))
	assert.Equal(t, base, more)
}

func TestMatcherScores(t *testing.T) {
	cat := catalogue.Default()
	scores := NewMatcher(cat, MatchThreshold).Scores(labels("Headache", "Sensitivity to Light"))
	assert.Len(t, scores, cat.Len())
	byID := map[string]float64{}
	for _, s := range scores {
		byID[s.ConditionID] = s.Score
	}
	assert.Equal(t, 2.5, byID["migraine"])
	assert.Equal(t, 2.5, byID["migraine_with_aura"])
	assert.Equal(t, 1.5, byID["tension_headache"])
	assert.Equal(t, 0.0, byID["acne"])
}

func TestSeverityClassify(t *testing.T) {
	r := DefaultRules()
	c := NewSeverityClassifier(r.SeverityRules, r.DefaultSeverity)

	tests := []struct {
		key  string
		tier Tier
		pct  int
	}{
		{"chest pain", TierCritical, 90},
		{"severe head injury", TierCritical, 90},
		{"chest pain and cough", TierCritical, 90},
		{"paralysis/numbness", TierCritical, 90},
		{"head injury", TierModerate, 60},
		{"fever", TierModerate, 60},
		{"cough", TierMild, 30},
		{"fatigue/tiredness", TierMild, 30},
		{"mild headache", TierMild, 30},
		{"headache", TierModerate, 50},
		{"wheezing", TierModerate, 50},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := c.Classify(tt.key)
			assert.Equal(t, tt.tier, got.Tier)
			assert.Equal(t, tt.pct, got.Percentage)
		})
	}
}

func TestConfidenceScore(t *testing.T) {
	r := DefaultRules()
	s := NewConfidenceScorer(r.ConfidencePatterns, r.SpecificSymptoms)

	tests := []struct {
		name string
		in   ConfidenceInput
		want float64
	}{
		{"nothing", ConfidenceInput{}, NoConfidence},
		{"one symptom", ConfidenceInput{Labels: labels("Cough")}, 0.6},
		{"two symptoms", ConfidenceInput{Labels: labels("Cough", "Sneezing")}, 0.7},
		{"symptom bonus capped", ConfidenceInput{Labels: labels("Ear Pain", "Sweating", "Chills", "Blisters")}, 0.8},
		{"image only", ConfidenceInput{HasImage: true}, 0.7},
		{"good image", ConfidenceInput{HasImage: true, ImageQuality: ImageQualityGood}, 0.8},
		{"audio only", ConfidenceInput{HasAudio: true}, 0.65},
		{"specific symptom", ConfidenceInput{Labels: labels("Chest Pain")}, 0.7},
		{"pattern", ConfidenceInput{Labels: labels("Headache", "Sensitivity to Light")}, 0.85},
		{"clamped", ConfidenceInput{Labels: labels("Fever", "Cough", "Body Aches"), HasImage: true, HasAudio: true}, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(tt.in), 1e-9)
		})
	}
}

func TestConfidenceMonotoneAndBounded(t *testing.T) {
	r := DefaultRules()
	s := NewConfidenceScorer(r.ConfidencePatterns, r.SpecificSymptoms)
	pool := []string{"Ear Pain", "Sweating", "Chills", "Blisters", "Fever", "Cough", "Fatigue", "Body Aches", "Chest Pain", "Nausea"}

	prev := 0.0
	for n := 1; n <= len(pool); n++ {
		got := s.Score(ConfidenceInput{Labels: labels(pool[:n]...)})
		assert.GreaterOrEqual(t, got, prev, "n=%d", n)
		assert.LessOrEqual(t, got, 0.95)
		prev = got

		withMedia := s.Score(ConfidenceInput{Labels: labels(pool[:n]...), HasImage: true, HasAudio: true, ImageQuality: ImageQualityGood})
		assert.LessOrEqual(t, withMedia, 0.95)
		assert.GreaterOrEqual(t, withMedia, got)
	}
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "HIGH", ConfidenceLevel(0.8))
	assert.Equal(t, "MODERATE", ConfidenceLevel(0.6))
	assert.Equal(t, "MODERATE", ConfidenceLevel(0.79))
	assert.Equal(t, "LOW", ConfidenceLevel(0.59))
	assert.Equal(t, "LOW", ConfidenceLevel(NoConfidence))
}

func TestRiskAssess(t *testing.T) {
	r := DefaultRules()
	agg := NewRiskAggregator(r.RiskCritical, r.RiskModerate, r.RiskProfiles)

	tests := []struct {
		name     string
		in       []string
		tier     RiskTier
		critical int
		moderate int
		mild     int
	}{
		{"critical", []string{"Chest Pain", "Cough"}, RiskHigh, 1, 0, 1},
		{"two moderate", []string{"Fever", "Fainting"}, RiskModerate, 0, 2, 0},
		{"one moderate", []string{"Fever", "Cough"}, RiskLow, 0, 1, 1},
		{"mild only", []string{"Cough", "Sneezing"}, RiskLow, 0, 0, 2},
		{"overlapping keywords", []string{"Severe Head Injury"}, RiskHigh, 1, 1, -1},
		{"empty", nil, RiskLow, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agg.Assess(labels(tt.in...))
			assert.Equal(t, tt.tier, got.Tier)
			assert.Equal(t, tt.critical, got.CriticalCount)
			assert.Equal(t, tt.moderate, got.ModerateCount)
			assert.Equal(t, tt.mild, got.MildCount)
			assert.Equal(t, r.RiskProfiles[tt.tier].Description, got.Description)
		})
	}
}
