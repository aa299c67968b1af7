package advisor

import (
	"fmt"
	"strings"

	"github.com/Skufu/GoTriage/internal/llm"
)

const systemPrompt = `You are a medical triage assistant. Provide concise, professional assessments of the reported case.

Fill every field:
- urgency: one of Low, Medium, High, Emergency
- condition: primary condition, optionally followed by " -> " and a secondary consideration
- assessment: 2-3 key findings
- recommendations: 3-4 specific actions
- urgent_care: when to seek in-person care

Be direct, clinical, and actionable. No unnecessary explanations. You are not a substitute for a doctor.`

// ConsultationSchema is the structured output requested from the model.
var ConsultationSchema = &llm.Schema{
	Name:        "triage-consultation",
	Description: "A short structured triage assessment.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"urgency": map[string]any{
				"type": "string",
				"enum": []string{"Low", "Medium", "High", "Emergency"},
			},
			"condition":  map[string]any{"type": "string"},
			"assessment": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"urgent_care": map[string]any{"type": "string"},
		},
		"required":             []string{"urgency", "condition", "assessment", "recommendations", "urgent_care"},
		"additionalProperties": false,
	},
}

// narrative is the decoded model output.
type narrative struct {
	Urgency         string   `json:"urgency"`
	Condition       string   `json:"condition"`
	Assessment      []string `json:"assessment"`
	Recommendations []string `json:"recommendations"`
	UrgentCare      string   `json:"urgent_care"`
}

// String renders the narrative in the same labelled-line layout as the
// catalogue responses so reports can parse either.
func (n narrative) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "URGENCY: %s\n", n.Urgency)
	fmt.Fprintf(&b, "CONDITION: %s\n", n.Condition)
	fmt.Fprintf(&b, "ASSESSMENT: %s\n", strings.Join(n.Assessment, "; "))
	fmt.Fprintf(&b, "RECOMMENDATIONS: %s\n", strings.Join(n.Recommendations, "; "))
	fmt.Fprintf(&b, "URGENT CARE: %s", n.UrgentCare)
	return b.String()
}

func caseMessage(caseText string) string {
	return "CASE: " + caseText
}
