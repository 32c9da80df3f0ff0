package defects

import "Backend-GuardPoint/src/models"

// ComputeStats tallies defects by status, by severity (open work only, so
// resolved defects are excluded from the severity breakdown), and counts the
// urgent ones: critical or high severity not yet resolved.
func ComputeStats(defects []models.Defect) models.DefectStats {
	stats := models.DefectStats{
		Total:      int64(len(defects)),
		ByStatus:   map[string]int64{},
		BySeverity: map[string]int64{},
	}

	for _, d := range defects {
		stats.ByStatus[d.Status]++
		if d.Status != models.DefectResolved {
			stats.BySeverity[d.Severity]++
			if d.Severity == models.SeverityCritical || d.Severity == models.SeverityHigh {
				stats.UrgentCount++
			}
		}
	}
	return stats
}
