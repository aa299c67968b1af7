package triage

import (
	"errors"
	"fmt"
)

// MatchThreshold is the minimum aggregate score for a condition to be selected.
const MatchThreshold = 2.0

// RedFlag maps a normalized symptom to the alert shown when it is present.
type RedFlag struct {
	Symptom string
	Alert   string
}

// SeverityRule is one keyword bucket; rules are evaluated in slice order.
type SeverityRule struct {
	Keywords []string
	Severity Severity
}

// PriorityGuide is the presentation attached to a severity tier.
type PriorityGuide struct {
	Level   int
	Color   string
	Emoji   string
	Action  string
	Details string
}

// RiskProfile is the presentation attached to a risk tier.
type RiskProfile struct {
	Description string
	Color       string
	Emoji       string
}

// ScaleBand labels a normalized 0-100 score up to and including Max.
type ScaleBand struct {
	Max         float64
	Label       string
	Color       string
	Description string
}

// BodySystemRule buckets a symptom by keyword. The last bucket a symptom can
// fall into is the general one, which has no keywords.
type BodySystemRule struct {
	System   string
	Emoji    string
	Keywords []string
}

// InsightRule fires when every Required keyword and at least MinAny of AnyOf
// keywords occur in the joined symptom text.
type InsightRule struct {
	Required []string
	AnyOf    []string
	MinAny   int
	Insight  Insight
}

// RecoveryCurve applies when the mean severity is at least MinAverage.
type RecoveryCurve struct {
	MinAverage float64
	Days       int
	Timeline   []Phase
}

// Rules holds every static keyword table the engine reads. Build it once with
// DefaultRules and pass it to NewEngine; nothing mutates it afterwards.
type Rules struct {
	MatchThreshold float64

	RedFlags []RedFlag

	SeverityRules   []SeverityRule
	DefaultSeverity Severity

	ConfidencePatterns [][]string
	SpecificSymptoms   []string

	RiskCritical []string
	RiskModerate []string
	RiskProfiles map[RiskTier]RiskProfile

	PriorityGuides map[Tier]PriorityGuide

	BodySystems        []BodySystemRule
	GeneralSystem      BodySystemRule
	BodySystemMax      float64
	SeverityScale      []ScaleBand
	NoBodySystemImpact string

	Insights       []InsightRule
	DefaultInsight Insight

	RecoveryCurves []RecoveryCurve

	FallbackRemedy string
}

const (
	colorCritical = "#e53e3e"
	colorModerate = "#ed8936"
	colorMild     = "#48bb78"
)

// DefaultRules returns the built-in tables.
func DefaultRules() Rules {
	return Rules{
		MatchThreshold: MatchThreshold,

		RedFlags: []RedFlag{
			{"chest pain", "CHEST PAIN - Could indicate heart issues. Seek emergency care immediately."},
			{"difficulty breathing", "BREATHING DIFFICULTY - Requires immediate medical attention."},
			{"severe bleeding", "SEVERE BLEEDING - Apply pressure and seek emergency care."},
			{"sudden weakness", "SUDDEN WEAKNESS - Could be stroke. Call emergency services."},
			{"suicidal thoughts", "MENTAL HEALTH EMERGENCY - Contact crisis helpline immediately."},
			{"shortness of breath", "BREATHING DIFFICULTY - Requires immediate medical attention."},
			{"seizure", "SEIZURE - This is a medical emergency. Call emergency services."},
			{"severe head injury", "SEVERE HEAD INJURY - Requires immediate medical attention."},
			{"paralysis/numbness", "PARALYSIS/NUMBNESS - Could be stroke. Call emergency services immediately."},
		},

		SeverityRules: []SeverityRule{
			{
				Keywords: []string{
					"chest pain", "difficulty breathing", "severe bleeding",
					"sudden weakness", "suicidal thoughts", "seizure",
					"severe head injury", "paralysis", "numbness",
				},
				Severity: Severity{Tier: TierCritical, Percentage: 90, Color: colorCritical, Emoji: "🔴"},
			},
			{
				Keywords: []string{
					"fever", "high pain", "head injury", "vision problems",
					"heart palpitations", "shortness of breath", "fainting",
					"vomiting", "severe headache", "burning sensation",
				},
				Severity: Severity{Tier: TierModerate, Percentage: 60, Color: colorModerate, Emoji: "🟡"},
			},
			{
				Keywords: []string{
					"cough", "runny nose", "sneezing", "mild headache", "fatigue",
					"allergies", "itching", "dry skin", "congestion",
				},
				Severity: Severity{Tier: TierMild, Percentage: 30, Color: colorMild, Emoji: "🟢"},
			},
		},
		DefaultSeverity: Severity{Tier: TierModerate, Percentage: 50, Color: colorModerate, Emoji: "🟡"},

		ConfidencePatterns: [][]string{
			{"fever", "cough", "fatigue", "body aches"},
			{"headache", "nausea", "vision problems", "sensitivity to light"},
			{"joint pain", "muscle pain", "fatigue"},
			{"nausea", "appetite loss", "fatigue", "stomach pain"},
			{"anxiety", "headache", "dizziness", "rapid heartbeat"},
			{"dizziness", "headache", "nausea", "balance problems"},
			{"chest pain", "shortness of breath", "palpitations"},
			{"skin rash", "itching", "redness", "swelling"},
		},
		SpecificSymptoms: []string{"chest pain", "difficulty breathing", "loss of smell", "visual disturbances"},

		RiskCritical: []string{
			"chest pain", "difficulty breathing", "severe bleeding",
			"sudden weakness", "suicidal thoughts", "seizure",
			"severe head injury", "paralysis/numbness",
		},
		RiskModerate: []string{
			"fever", "high pain", "head injury", "vision problems",
			"heart palpitations", "shortness of breath", "fainting",
		},
		RiskProfiles: map[RiskTier]RiskProfile{
			RiskHigh:     {Description: "Potential emergency - seek immediate care", Color: colorCritical, Emoji: "🚨"},
			RiskModerate: {Description: "Consult healthcare provider soon", Color: "#dd6b20", Emoji: "🟡"},
			RiskLow:      {Description: "Self-care may be appropriate", Color: "#38a169", Emoji: "🟢"},
		},

		PriorityGuides: map[Tier]PriorityGuide{
			TierCritical: {
				Level: 1, Color: colorCritical, Emoji: "🔴",
				Action:  "Address immediately",
				Details: "This symptom requires urgent attention and may indicate serious health risks",
			},
			TierModerate: {
				Level: 2, Color: colorModerate, Emoji: "🟡",
				Action:  "Monitor closely",
				Details: "This symptom needs proper management to prevent complications",
			},
			TierMild: {
				Level: 3, Color: colorMild, Emoji: "🟢",
				Action:  "Self-care",
				Details: "This symptom can be managed with self-care and should improve naturally",
			},
		},

		BodySystems: []BodySystemRule{
			{System: "Neurological", Emoji: "🧠", Keywords: []string{"headache", "dizziness", "confusion", "memory", "anxiety", "depression", "vision", "hearing"}},
			{System: "Cardiovascular", Emoji: "🫀", Keywords: []string{"chest", "heart", "breathing", "palpitations", "blood pressure", "irregular heartbeat"}},
			{System: "Digestive", Emoji: "🍽️", Keywords: []string{"nausea", "vomiting", "diarrhea", "constipation", "stomach", "appetite", "bloating"}},
			{System: "Skin", Emoji: "🧴", Keywords: []string{"rash", "itching", "redness", "swelling", "acne", "dry skin", "hair loss"}},
			{System: "Musculoskeletal", Emoji: "🦴", Keywords: []string{"muscle", "joint", "back", "neck", "stiffness", "swelling", "movement"}},
		},
		GeneralSystem: BodySystemRule{System: "General", Emoji: "🤒"},
		BodySystemMax: 300,
		SeverityScale: []ScaleBand{
			{Max: 30, Label: "🟢 Mild", Color: colorMild, Description: "Minor impact"},
			{Max: 60, Label: "🟡 Moderate", Color: colorModerate, Description: "Noticeable but manageable"},
			{Max: 80, Label: "🟠 Significant", Color: "#dd6b20", Description: "Substantial impact"},
			{Max: 100, Label: "🔴 Severe", Color: colorCritical, Description: "Major health concern"},
		},
		NoBodySystemImpact: "No specific body system impact detected",

		Insights: []InsightRule{
			{
				AnyOf:  []string{"cough", "cold", "runny nose", "congestion", "sneezing", "sore throat"},
				MinAny: 2,
				Insight: Insight{
					Emoji:       "🫁",
					Title:       "Upper Respiratory Pattern Detected",
					Description: "Your symptoms suggest a common cold or viral URI. Focus on respiratory care.",
					Tip:         "Steam inhalation can reduce congestion by 60%",
				},
			},
			{
				Required: []string{"fever"},
				AnyOf:    []string{"body aches", "fatigue", "chills"},
				MinAny:   1,
				Insight: Insight{
					Emoji:       "🌡️",
					Title:       "Systemic Infection Pattern",
					Description: "Fever with body aches suggests your immune system is actively fighting infection.",
					Tip:         "Rest is crucial - your body needs energy to fight the infection",
				},
			},
			{
				AnyOf:  []string{"headache", "migraine", "sensitivity to light"},
				MinAny: 1,
				Insight: Insight{
					Emoji:       "🧠",
					Title:       "Neurological Symptom Pattern",
					Description: "Headache symptoms respond well to hydration and rest in a quiet environment.",
					Tip:         "Avoid screen time and bright lights to reduce headache intensity",
				},
			},
			{
				AnyOf:  []string{"nausea", "vomiting", "diarrhea", "stomach pain"},
				MinAny: 1,
				Insight: Insight{
					Emoji:       "🍽️",
					Title:       "Gastrointestinal Pattern",
					Description: "Digestive symptoms require careful hydration and bland diet management.",
					Tip:         "Sip clear fluids slowly rather than drinking large amounts at once",
				},
			},
		},
		DefaultInsight: Insight{
			Emoji:       "🔍",
			Title:       "General Symptom Management",
			Description: "Your symptoms are being monitored. Consistent self-care will support recovery.",
			Tip:         "Track symptom changes daily to identify improvement patterns",
		},

		RecoveryCurves: []RecoveryCurve{
			{MinAverage: 70, Days: 7, Timeline: []Phase{
				{Day: "Today", Status: "Peak Symptoms", Percentage: 100, Description: "Maximum symptom intensity"},
				{Day: "Day 2-3", Status: "Gradual Improvement", Percentage: 70, Description: "Symptoms begin to decrease"},
				{Day: "Day 4-5", Status: "Significant Relief", Percentage: 40, Description: "Major improvement visible"},
				{Day: "Day 6-7", Status: "Near Recovery", Percentage: 10, Description: "Minimal symptoms remain"},
			}},
			{MinAverage: 40, Days: 5, Timeline: []Phase{
				{Day: "Today", Status: "Active Symptoms", Percentage: 80, Description: "Symptoms are prominent"},
				{Day: "Day 2-3", Status: "Steady Improvement", Percentage: 50, Description: "Noticeable reduction in symptoms"},
				{Day: "Day 4-5", Status: "Mostly Recovered", Percentage: 15, Description: "Symptoms largely resolved"},
			}},
			{MinAverage: 0, Days: 3, Timeline: []Phase{
				{Day: "Today", Status: "Mild Symptoms", Percentage: 60, Description: "Manageable symptom level"},
				{Day: "Day 2", Status: "Rapid Improvement", Percentage: 25, Description: "Quick recovery progression"},
				{Day: "Day 3", Status: "Full Recovery", Percentage: 5, Description: "Back to normal health"},
			}},
		},

		FallbackRemedy: "💧 Stay hydrated • 🛌 Get plenty of rest • 🌡️ Monitor your symptoms • 📞 Contact doctor if symptoms worsen",
	}
}

// Validate rejects tables the engine cannot evaluate deterministically.
func (r Rules) Validate() error {
	var errs []error

	if r.MatchThreshold <= 0 {
		errs = append(errs, fmt.Errorf("match threshold must be positive, got %v", r.MatchThreshold))
	}

	seen := make(map[string]struct{}, len(r.RedFlags))
	for _, f := range r.RedFlags {
		if f.Symptom == "" || f.Alert == "" {
			errs = append(errs, fmt.Errorf("red flag %q: empty symptom or alert", f.Symptom))
		}
		if _, dup := seen[f.Symptom]; dup {
			errs = append(errs, fmt.Errorf("duplicate red flag %q", f.Symptom))
		}
		seen[f.Symptom] = struct{}{}
	}

	if len(r.SeverityRules) == 0 {
		errs = append(errs, errors.New("no severity rules"))
	}
	if r.DefaultSeverity.Tier == "" {
		errs = append(errs, errors.New("default severity has no tier"))
	}
	for _, sr := range r.SeverityRules {
		if _, ok := r.PriorityGuides[sr.Severity.Tier]; !ok {
			errs = append(errs, fmt.Errorf("no priority guide for tier %q", sr.Severity.Tier))
		}
	}
	if _, ok := r.PriorityGuides[r.DefaultSeverity.Tier]; !ok {
		errs = append(errs, fmt.Errorf("no priority guide for default tier %q", r.DefaultSeverity.Tier))
	}

	for _, tier := range []RiskTier{RiskLow, RiskModerate, RiskHigh} {
		if _, ok := r.RiskProfiles[tier]; !ok {
			errs = append(errs, fmt.Errorf("no risk profile for %s", tier))
		}
	}

	if r.BodySystemMax <= 0 {
		errs = append(errs, fmt.Errorf("body system max must be positive, got %v", r.BodySystemMax))
	}
	if len(r.SeverityScale) == 0 || r.SeverityScale[len(r.SeverityScale)-1].Max < 100 {
		errs = append(errs, errors.New("severity scale must cover 100"))
	}
	for i := 1; i < len(r.SeverityScale); i++ {
		if r.SeverityScale[i].Max <= r.SeverityScale[i-1].Max {
			errs = append(errs, errors.New("severity scale must be strictly ascending"))
			break
		}
	}

	if len(r.RecoveryCurves) == 0 || r.RecoveryCurves[len(r.RecoveryCurves)-1].MinAverage != 0 {
		errs = append(errs, errors.New("recovery curves must end with a zero-threshold curve"))
	}
	for i := 1; i < len(r.RecoveryCurves); i++ {
		if r.RecoveryCurves[i].MinAverage >= r.RecoveryCurves[i-1].MinAverage {
			errs = append(errs, errors.New("recovery curves must be strictly descending"))
			break
		}
	}

	return errors.Join(errs...)
}
