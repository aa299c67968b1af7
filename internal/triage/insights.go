package triage

import "github.com/Skufu/GoTriage/internal/symptom"

// GenerateInsights evaluates every rule against the joined symptom text and
// returns the ones that fire in rule order. With none firing the default
// insight is returned on its own; with no symptoms at all nothing is.
func GenerateInsights(labels []symptom.Label, rules []InsightRule, def Insight) InsightSet {
	if len(labels) == 0 {
		return InsightSet{Empty: true, Message: NoInsights, Items: []Insight{}}
	}
	text := symptom.Text(labels)

	out := []Insight{}
	for _, r := range rules {
		if r.fires(text) {
			out = append(out, r.Insight)
		}
	}
	if len(out) == 0 {
		out = append(out, def)
	}
	return InsightSet{Items: out}
}

func (r InsightRule) fires(text string) bool {
	if countContained(text, r.Required) != len(r.Required) {
		return false
	}
	return countContained(text, r.AnyOf) >= r.MinAny
}
