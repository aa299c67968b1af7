package triage

import "math"

// BodySystemMapper buckets classified symptoms into body systems and scales
// the summed severity into a labelled 0-100 impact.
type BodySystemMapper struct {
	rules   []BodySystemRule
	general BodySystemRule
	max     float64
	scale   []ScaleBand
	none    string
}

// NewBodySystemMapper builds a mapper from the body-system fields of rules.
func NewBodySystemMapper(rules Rules) *BodySystemMapper {
	return &BodySystemMapper{
		rules:   rules.BodySystems,
		general: rules.GeneralSystem,
		max:     rules.BodySystemMax,
		scale:   rules.SeverityScale,
		none:    rules.NoBodySystemImpact,
	}
}

// Map assigns each symptom to the first system whose keyword it contains,
// or to the general system. Systems are reported in rule order with general
// last, and only when their score is non-zero.
func (m *BodySystemMapper) Map(severities []SymptomSeverity) BodySystemImpact {
	scores := make([]int, len(m.rules)+1)
	for _, s := range severities {
		scores[m.bucket(s.Label.Key)] += s.Severity.Percentage
	}

	systems := make([]SystemImpact, 0, len(scores))
	for i, score := range scores {
		if score <= 0 {
			continue
		}
		rule := m.general
		if i < len(m.rules) {
			rule = m.rules[i]
		}
		normalized := math.Min(100, float64(score)*100/m.max)
		band := m.band(normalized)
		systems = append(systems, SystemImpact{
			System:      rule.System,
			Emoji:       rule.Emoji,
			Score:       score,
			Normalized:  normalized,
			Label:       band.Label,
			Color:       band.Color,
			Description: band.Description,
		})
	}

	if len(systems) == 0 {
		return BodySystemImpact{Empty: true, Message: m.none, Systems: systems}
	}
	return BodySystemImpact{Systems: systems}
}

func (m *BodySystemMapper) bucket(key string) int {
	for i, r := range m.rules {
		if containsAny(key, r.Keywords) {
			return i
		}
	}
	return len(m.rules)
}

func (m *BodySystemMapper) band(v float64) ScaleBand {
	for _, b := range m.scale {
		if v <= b.Max {
			return b
		}
	}
	return m.scale[len(m.scale)-1]
}
