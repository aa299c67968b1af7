// Package dashboard renders an assessment for the terminal.
package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Skufu/GoTriage/internal/triage"
)

const defaultBarWidth = 24

// Renderer turns assessments into terminal text.
type Renderer struct {
	// BarWidth is the cell width of severity bars.
	BarWidth int
	// Plain strips all styling, for pipes and logs.
	Plain bool
}

// New returns a Renderer with default settings.
func New(plain bool) *Renderer {
	return &Renderer{BarWidth: defaultBarWidth, Plain: plain}
}

// Render lays out every section of a. An empty intake renders only the
// prompt to select symptoms.
func (r *Renderer) Render(a triage.Assessment) string {
	var sections []string
	sections = append(sections, titleStyle.Render("Symptom Triage"))

	if a.Empty {
		sections = append(sections, hintStyle.Render(a.Message))
		return r.finish(sections)
	}

	if a.Emergency {
		sections = append(sections, emergencyStyle.Render(a.EmergencyMessage))
	} else if a.Condition != nil {
		sections = append(sections, cardStyle.Render(
			bodyStyle.Bold(true).Render(a.Condition.Name)+"\n"+
				hintStyle.Render(a.Condition.Urgency)))
	}

	sections = append(sections,
		r.overview(a),
		r.severities(a.Severities),
		r.priorities(a.Priorities),
		r.bodySystems(a.BodySystems),
		r.insights(a.Insights),
		r.recovery(a.Recovery),
		section("Immediate Remedy")+"\n"+bodyStyle.Render(a.Remedy),
	)
	return r.finish(sections)
}

func (r *Renderer) finish(sections []string) string {
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if r.Plain {
		out = ansi.Strip(out)
	}
	return out + "\n"
}

func section(title string) string {
	return sectionStyle.Render(title)
}

func (r *Renderer) overview(a triage.Assessment) string {
	risk := tint(a.Risk.Color, fmt.Sprintf("%s %s RISK", a.Risk.Emoji, a.Risk.Tier))
	lines := []string{
		section("Overview"),
		risk + "  " + hintStyle.Render(a.Risk.Description),
		bodyStyle.Render(fmt.Sprintf("Confidence: %d%% (%s)", int(a.Confidence*100+0.5), a.ConfidenceLevel)),
		hintStyle.Render(fmt.Sprintf("Critical %d, moderate %d, mild %d", a.Risk.CriticalCount, a.Risk.ModerateCount, a.Risk.MildCount)),
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) severities(items []triage.SymptomSeverity) string {
	lines := []string{section("Symptom Severity")}
	width := nameWidth(len(items), func(i int) string { return items[i].Label.Name })
	for _, s := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			s.Severity.Emoji,
			bodyStyle.Render(pad(s.Label.Name, width)),
			r.bar(float64(s.Severity.Percentage), s.Severity.Color),
			tint(s.Severity.Color, fmt.Sprintf("%3d%% %s", s.Severity.Percentage, s.Severity.Tier)),
		))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) priorities(ranking triage.PriorityRanking) string {
	lines := []string{section("Priorities")}
	if ranking.Empty {
		return strings.Join(append(lines, hintStyle.Render(ranking.Message)), "\n")
	}
	for i, p := range ranking.Items {
		lines = append(lines, fmt.Sprintf("%d. %s %s - %s",
			i+1, p.Emoji, bodyStyle.Bold(true).Render(p.Symptom), tint(p.Color, p.Action)))
		lines = append(lines, "   "+hintStyle.Render(p.Details))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) bodySystems(b triage.BodySystemImpact) string {
	lines := []string{section("Body Systems")}
	if b.Empty {
		return strings.Join(append(lines, hintStyle.Render(b.Message)), "\n")
	}
	width := nameWidth(len(b.Systems), func(i int) string { return b.Systems[i].System })
	for _, s := range b.Systems {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			s.Emoji,
			bodyStyle.Render(pad(s.System, width)),
			r.bar(s.Normalized, s.Color),
			tint(s.Color, fmt.Sprintf("%3d%% %s", int(s.Normalized), s.Label)),
		))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) insights(set triage.InsightSet) string {
	lines := []string{section("Insights")}
	if set.Empty {
		return strings.Join(append(lines, hintStyle.Render(set.Message)), "\n")
	}
	for _, in := range set.Items {
		lines = append(lines,
			fmt.Sprintf("%s %s", in.Emoji, bodyStyle.Bold(true).Render(in.Title)),
			"   "+bodyStyle.Render(in.Description),
			"   "+hintStyle.Render("Tip: "+in.Tip))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) recovery(rec triage.RecoveryEstimate) string {
	if rec.Empty {
		return section("Recovery")
	}
	lines := []string{section(fmt.Sprintf("Recovery (%d days expected)", rec.Days))}
	for _, p := range rec.Timeline {
		lines = append(lines, fmt.Sprintf("%-8s %s %s",
			p.Day, r.bar(float64(p.Percentage), accentHex), bodyStyle.Render(p.Status+" - "+p.Description)))
	}
	return strings.Join(lines, "\n")
}

// bar draws a pct-filled track of r.BarWidth cells.
func (r *Renderer) bar(pct float64, hex string) string {
	width := r.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))

	fill := strings.Repeat("█", filled)
	track := strings.Repeat("░", width-filled)
	return tint(hex, fill) + lipgloss.NewStyle().Foreground(trackBg).Render(track)
}

func nameWidth(n int, name func(int) string) int {
	w := 0
	for i := 0; i < n; i++ {
		w = max(w, lipgloss.Width(name(i)))
	}
	return w
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
