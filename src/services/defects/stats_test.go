package defects

import (
	"testing"

	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	defects := []models.Defect{
		{Status: models.DefectOpen, Severity: models.SeverityCritical},
		{Status: models.DefectOpen, Severity: models.SeverityLow},
		{Status: models.DefectInProgress, Severity: models.SeverityHigh},
		{Status: models.DefectResolved, Severity: models.SeverityCritical},
		{Status: models.DefectClosed, Severity: models.SeverityMedium},
	}

	stats := ComputeStats(defects)

	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[models.DefectOpen])
	assert.Equal(t, int64(1), stats.ByStatus[models.DefectInProgress])
	assert.Equal(t, int64(1), stats.ByStatus[models.DefectResolved])
	assert.Equal(t, int64(1), stats.ByStatus[models.DefectClosed])

	// resolved defects are excluded from the severity breakdown
	assert.Equal(t, int64(1), stats.BySeverity[models.SeverityCritical])
	assert.Equal(t, int64(1), stats.BySeverity[models.SeverityHigh])
	assert.Equal(t, int64(1), stats.BySeverity[models.SeverityLow])
	assert.Equal(t, int64(1), stats.BySeverity[models.SeverityMedium])

	// open critical + in-progress high; the resolved critical does not count
	assert.Equal(t, int64(2), stats.UrgentCount)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, int64(0), stats.Total)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.BySeverity)
	assert.Equal(t, int64(0), stats.UrgentCount)
}
