package triage

import (
	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/symptom"
)

// Matcher scores catalogue entries by summed symptom weights.
type Matcher struct {
	catalogue *catalogue.Catalogue
	threshold float64
}

// NewMatcher returns a matcher over the given catalogue.
func NewMatcher(cat *catalogue.Catalogue, threshold float64) *Matcher {
	return &Matcher{catalogue: cat, threshold: threshold}
}

// Match returns the highest-scoring condition when its score reaches the
// threshold. Ties keep the earlier catalogue entry; that is an approximation
// inherited from iteration order, not a severity ranking.
func (m *Matcher) Match(labels []symptom.Label) MatchResult {
	if len(labels) == 0 {
		return MatchResult{}
	}

	var best MatchResult
	m.catalogue.Each(func(cond catalogue.Condition, keys []string) bool {
		score := m.score(keys, labels)
		if score > best.Score && score >= m.threshold {
			best = MatchResult{ConditionID: cond.ID, Score: score, Matched: true}
		}
		return true
	})
	return best
}

// Scores returns every condition's aggregate score in catalogue order,
// including those under the threshold.
func (m *Matcher) Scores(labels []symptom.Label) []MatchResult {
	out := make([]MatchResult, 0, m.catalogue.Len())
	m.catalogue.Each(func(cond catalogue.Condition, keys []string) bool {
		score := m.score(keys, labels)
		out = append(out, MatchResult{ConditionID: cond.ID, Score: score, Matched: score >= m.threshold})
		return true
	})
	return out
}

// score sums weights of the labels present in keys. Labels outside the
// condition add nothing and subtract nothing.
func (m *Matcher) score(keys []string, labels []symptom.Label) float64 {
	score := 0.0
	for _, l := range labels {
		if containsKey(keys, l.Key) {
			score += m.catalogue.Weight(l.Key)
		}
	}
	return score
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
