package triage

import "sort"

// Prioritize ranks classified symptoms by the guide level of their tier,
// most urgent first. Equal levels keep input order.
func Prioritize(severities []SymptomSeverity, guides map[Tier]PriorityGuide) PriorityRanking {
	if len(severities) == 0 {
		return PriorityRanking{Empty: true, Message: NoPriorities, Items: []Priority{}}
	}

	out := make([]Priority, 0, len(severities))
	for _, s := range severities {
		g := guides[s.Severity.Tier]
		out = append(out, Priority{
			Symptom:    s.Label.Name,
			Level:      g.Level,
			Tier:       s.Severity.Tier,
			Color:      g.Color,
			Emoji:      g.Emoji,
			Action:     g.Action,
			Details:    g.Details,
			Percentage: s.Severity.Percentage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return PriorityRanking{Items: out}
}
