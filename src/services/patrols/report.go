package patrols

import (
	"time"

	"Backend-GuardPoint/src/models"
)

// Verification statuses for client display.
const (
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

// VisitVerified applies the presence rule: within the checkpoint radius
// (inclusive), or the on-site token was scanned. Scanning is an alternate
// proof of presence for GPS-denied indoor sites.
func VisitVerified(distanceMeters, radiusMeters float64, scannedToken bool) bool {
	return distanceMeters <= radiusMeters || scannedToken
}

// OverdueInfo derives the missed-checkpoints report row for one checkpoint
// from its most recent check-in (nil when it has never been visited).
func OverdueInfo(cp models.Checkpoint, lastCheckedAt *time.Time, now time.Time) *models.OverdueCheckpoint {
	if lastCheckedAt == nil {
		return &models.OverdueCheckpoint{Checkpoint: cp, NeverChecked: true}
	}

	minutesSince := now.Sub(*lastCheckedAt).Minutes()
	if minutesSince <= float64(cp.CheckFrequencyMinutes) {
		return nil // on schedule
	}

	overdueBy := minutesSince - float64(cp.CheckFrequencyMinutes)
	return &models.OverdueCheckpoint{
		Checkpoint:            cp,
		LastCheckedAt:         lastCheckedAt,
		MinutesSinceLastCheck: &minutesSince,
		OverdueByMinutes:      &overdueBy,
	}
}

// ComputeStats aggregates a day's check-ins against the active checkpoint set.
func ComputeStats(checkins []models.PatrolCheckIn, checkpoints []models.Checkpoint) models.PatrolStats {
	stats := models.PatrolStats{
		TotalCheckins:    len(checkins),
		TotalCheckpoints: len(checkpoints),
	}

	visited := map[string]bool{}
	officers := map[string]bool{}
	for _, ci := range checkins {
		if ci.LocationVerified {
			stats.VerifiedCheckins++
		}
		visited[ci.CheckpointID] = true
		officers[ci.EmployeeID] = true
	}
	for _, cp := range checkpoints {
		if visited[cp.ID] {
			stats.CheckpointsVisited++
		}
	}
	stats.ActiveOfficers = len(officers)

	if stats.TotalCheckins > 0 {
		stats.VerificationRate = float64(stats.VerifiedCheckins) / float64(stats.TotalCheckins) * 100
	}
	if stats.TotalCheckpoints > 0 {
		stats.CoverageRate = float64(stats.CheckpointsVisited) / float64(stats.TotalCheckpoints) * 100
	}
	return stats
}
