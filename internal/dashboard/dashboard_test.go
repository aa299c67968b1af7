package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/GoTriage/internal/catalogue"
	"github.com/Skufu/GoTriage/internal/triage"
)

func analyze(t *testing.T, symptoms ...string) triage.Assessment {
	t.Helper()
	e, err := triage.NewEngine(catalogue.Default(), triage.DefaultRules())
	require.NoError(t, err)
	return e.Analyze(triage.Input{Symptoms: symptoms})
}

func TestRenderPlain(t *testing.T) {
	out := New(true).Render(analyze(t, "Fever", "Cough", "Body Aches"))

	assert.Equal(t, out, ansi.Strip(out), "plain output carries no escape codes")
	for _, want := range []string{
		"Influenza (Flu)",
		"LOW RISK",
		"Confidence: 95% (HIGH)",
		"Symptom Severity",
		"Priorities",
		"1. 🟡 Fever - Monitor closely",
		"Body Systems",
		"Systemic Infection Pattern",
		"Recovery (5 days expected)",
		"Immediate Remedy",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderEmergency(t *testing.T) {
	out := New(true).Render(analyze(t, "Seizure"))
	assert.Contains(t, out, "SEIZURE - This is a medical emergency.")
	assert.Contains(t, out, triage.EmergencyCallout)
	assert.Contains(t, out, "HIGH RISK")
}

func TestRenderEmpty(t *testing.T) {
	out := New(true).Render(analyze(t))
	assert.Contains(t, out, triage.NothingToAnalyze)
	assert.NotContains(t, out, "Priorities")
}

func TestRenderEmptySections(t *testing.T) {
	r := New(true)
	assert.Contains(t, ansi.Strip(r.priorities(triage.PriorityRanking{Empty: true, Message: triage.NoPriorities})), triage.NoPriorities)
	out := ansi.Strip(r.insights(triage.InsightSet{Empty: true, Message: triage.NoInsights}))
	assert.Contains(t, out, triage.NoInsights)
	assert.NotContains(t, out, "General Symptom Management")
}

func TestRenderStyled(t *testing.T) {
	a := analyze(t, "Chest Pain")
	styled := New(false).Render(a)
	assert.Contains(t, ansi.Strip(styled), "Chest Pain")
	assert.Equal(t, strings.Count(ansi.Strip(styled), "\n"), strings.Count(New(true).Render(a), "\n"))
}

func TestBarWidth(t *testing.T) {
	r := &Renderer{BarWidth: 10, Plain: true}
	assert.Equal(t, "█████░░░░░", ansi.Strip(r.bar(50, "#ffffff")))
	assert.Equal(t, "██████████", ansi.Strip(r.bar(150, "#ffffff")))
	assert.Equal(t, "░░░░░░░░░░", ansi.Strip(r.bar(-5, "")))
}
