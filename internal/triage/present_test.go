package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(raws ...string) []SymptomSeverity {
	r := DefaultRules()
	return NewSeverityClassifier(r.SeverityRules, r.DefaultSeverity).ClassifyAll(labels(raws...))
}

func TestPrioritizeStableByTier(t *testing.T) {
	got := Prioritize(classify("Cough", "Chest Pain", "Fever", "Sneezing", "Fainting"), DefaultRules().PriorityGuides)

	assert.False(t, got.Empty)
	items := got.Items
	var order []string
	for _, p := range items {
		order = append(order, p.Symptom)
	}
	assert.Equal(t, []string{"Chest Pain", "Fever", "Fainting", "Cough", "Sneezing"}, order)
	assert.Equal(t, 1, items[0].Level)
	assert.Equal(t, "Address immediately", items[0].Action)
	assert.Equal(t, 90, items[0].Percentage)
	assert.Equal(t, "Self-care", items[4].Action)
}

func TestPrioritizeNothing(t *testing.T) {
	got := Prioritize(nil, DefaultRules().PriorityGuides)
	assert.True(t, got.Empty)
	assert.Equal(t, NoPriorities, got.Message)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestBodySystems(t *testing.T) {
	m := NewBodySystemMapper(DefaultRules())

	t.Run("first matching system wins", func(t *testing.T) {
		got := m.Map(classify("Swelling Joints"))
		require.Len(t, got.Systems, 1)
		assert.Equal(t, "Skin", got.Systems[0].System)
	})

	t.Run("fixed order with general last", func(t *testing.T) {
		got := m.Map(classify("Fever", "Chest Pain", "Headache"))
		require.Len(t, got.Systems, 3)
		assert.Equal(t, "Neurological", got.Systems[0].System)
		assert.Equal(t, "Cardiovascular", got.Systems[1].System)
		assert.Equal(t, "General", got.Systems[2].System)

		assert.Equal(t, 90, got.Systems[1].Score)
		assert.InDelta(t, 30.0, got.Systems[1].Normalized, 1e-9)
		assert.Equal(t, "🟢 Mild", got.Systems[1].Label)
		assert.Equal(t, 60, got.Systems[2].Score)
	})

	t.Run("normalization capped", func(t *testing.T) {
		got := m.Map(classify("Chest Pain", "Chest Pain Left", "Chest Pain Right", "Chest Pain Radiating"))
		require.Len(t, got.Systems, 1)
		assert.Equal(t, 360, got.Systems[0].Score)
		assert.Equal(t, 100.0, got.Systems[0].Normalized)
		assert.Equal(t, "🔴 Severe", got.Systems[0].Label)
	})

	t.Run("scale bands", func(t *testing.T) {
		got := m.Map(classify("Chest Pain", "Difficulty Breathing"))
		require.Len(t, got.Systems, 1)
		assert.InDelta(t, 60.0, got.Systems[0].Normalized, 1e-9)
		assert.Equal(t, "🟡 Moderate", got.Systems[0].Label)

		got = m.Map(classify("Chest Pain", "Difficulty Breathing", "Heart Palpitations"))
		assert.Equal(t, "🟠 Significant", got.Systems[0].Label)
	})

	t.Run("empty", func(t *testing.T) {
		got := m.Map(nil)
		assert.True(t, got.Empty)
		assert.Equal(t, DefaultRules().NoBodySystemImpact, got.Message)
		assert.Empty(t, got.Systems)
	})
}

func TestEstimateRecovery(t *testing.T) {
	curves := DefaultRules().RecoveryCurves

	tests := []struct {
		name  string
		in    []string
		days  int
		avg   float64
		steps int
	}{
		{"severe", []string{"Chest Pain"}, 7, 90, 4},
		{"moderate", []string{"Fever"}, 5, 60, 3},
		{"mixed", []string{"Fever", "Cough"}, 5, 45, 3},
		{"mild", []string{"Cough"}, 3, 30, 3},
		{"boundary", []string{"Chest Pain", "Fever", "Fever Spike"}, 7, 70, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRecovery(classify(tt.in...), curves)
			assert.False(t, got.Empty)
			assert.Equal(t, tt.days, got.Days)
			assert.InDelta(t, tt.avg, got.AverageSeverity, 1e-9)
			assert.Len(t, got.Timeline, tt.steps)
		})
	}

	empty := EstimateRecovery(nil, curves)
	assert.True(t, empty.Empty)
	assert.Empty(t, empty.Timeline)
}

func TestEstimateRecoveryCopiesTimeline(t *testing.T) {
	curves := DefaultRules().RecoveryCurves
	got := EstimateRecovery(classify("Cough"), curves)
	got.Timeline[0].Status = "changed"
	assert.Equal(t, "Mild Symptoms", curves[2].Timeline[0].Status)
}

func TestGenerateInsights(t *testing.T) {
	r := DefaultRules()
	titles := func(raws ...string) []string {
		var out []string
		for _, in := range GenerateInsights(labels(raws...), r.Insights, r.DefaultInsight).Items {
			out = append(out, in.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Upper Respiratory Pattern Detected"}, titles("Cough", "Runny Nose"))
	assert.Equal(t, []string{"Systemic Infection Pattern"}, titles("Fever", "Body Aches"))
	assert.Equal(t, []string{"Neurological Symptom Pattern", "Gastrointestinal Pattern"}, titles("Headache", "Nausea"))
	assert.Equal(t, []string{"General Symptom Management"}, titles("Skin Rash"))
	assert.Empty(t, titles(), "no symptoms gets no cards")
	assert.Equal(t, []string{"General Symptom Management"}, titles("Fever"), "fever alone needs a companion symptom")

	empty := GenerateInsights(nil, r.Insights, r.DefaultInsight)
	assert.True(t, empty.Empty)
	assert.Equal(t, NoInsights, empty.Message)
	assert.NotNil(t, empty.Items)
}
