package triage

// EstimateRecovery picks the first curve whose threshold the mean severity
// percentage reaches. curves must be sorted by descending MinAverage.
func EstimateRecovery(severities []SymptomSeverity, curves []RecoveryCurve) RecoveryEstimate {
	if len(severities) == 0 || len(curves) == 0 {
		return RecoveryEstimate{Empty: true, Timeline: []Phase{}}
	}

	total := 0
	for _, s := range severities {
		total += s.Severity.Percentage
	}
	avg := float64(total) / float64(len(severities))

	curve := curves[len(curves)-1]
	for _, c := range curves {
		if avg >= c.MinAverage {
			curve = c
			break
		}
	}

	timeline := make([]Phase, len(curve.Timeline))
	copy(timeline, curve.Timeline)
	return RecoveryEstimate{Days: curve.Days, AverageSeverity: avg, Timeline: timeline}
}
