package triage

import (
	"strings"

	"github.com/Skufu/GoTriage/internal/symptom"
)

// EmergencyCallout closes every emergency notice.
const EmergencyCallout = "URGENT: CALL EMERGENCY: 911"

// EmergencyDetector gates routine triage on red-flag symptoms.
type EmergencyDetector struct {
	alerts map[string]string
}

// NewEmergencyDetector indexes the red-flag table by normalized symptom.
func NewEmergencyDetector(flags []RedFlag) *EmergencyDetector {
	d := &EmergencyDetector{alerts: make(map[string]string, len(flags))}
	for _, f := range flags {
		d.alerts[f.Symptom] = f.Alert
	}
	return d
}

// Detect returns one alert per red-flag label, in input order. An empty
// result means routine flow continues.
func (d *EmergencyDetector) Detect(labels []symptom.Label) []string {
	alerts := []string{}
	for _, l := range labels {
		if alert, ok := d.alerts[l.Key]; ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

// EmergencyMessage formats the notice that replaces a routine assessment.
func EmergencyMessage(alerts []string) string {
	if len(alerts) == 0 {
		return ""
	}
	return strings.Join(alerts, "\n\n") + "\n\n" + EmergencyCallout
}
