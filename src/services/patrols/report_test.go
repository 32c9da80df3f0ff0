package patrols

import (
	"testing"
	"time"

	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
)

func TestVisitVerified(t *testing.T) {
	assert.True(t, VisitVerified(30, 50, false), "inside radius")
	assert.True(t, VisitVerified(50, 50, false), "radius boundary is inclusive")
	assert.False(t, VisitVerified(51, 50, false), "outside radius")
	// scan token is an alternate proof of presence, distance irrelevant
	assert.True(t, VisitVerified(1000, 50, true))
}

func TestOverdueInfo(t *testing.T) {
	now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	cp := models.Checkpoint{ID: "cp-1", Name: "North Gate", CheckFrequencyMinutes: 60}

	t.Run("never checked", func(t *testing.T) {
		row := OverdueInfo(cp, nil, now)
		if assert.NotNil(t, row) {
			assert.True(t, row.NeverChecked)
			assert.Nil(t, row.OverdueByMinutes)
		}
	})

	t.Run("checked 90 minutes ago is overdue by 30", func(t *testing.T) {
		last := now.Add(-90 * time.Minute)
		row := OverdueInfo(cp, &last, now)
		if assert.NotNil(t, row) {
			assert.False(t, row.NeverChecked)
			assert.InDelta(t, 90, *row.MinutesSinceLastCheck, 1e-9)
			assert.InDelta(t, 30, *row.OverdueByMinutes, 1e-9)
		}
	})

	t.Run("checked 30 minutes ago is on schedule", func(t *testing.T) {
		last := now.Add(-30 * time.Minute)
		assert.Nil(t, OverdueInfo(cp, &last, now))
	})

	t.Run("exactly at frequency is not yet overdue", func(t *testing.T) {
		last := now.Add(-60 * time.Minute)
		assert.Nil(t, OverdueInfo(cp, &last, now))
	})
}

func TestComputeStats(t *testing.T) {
	cps := []models.Checkpoint{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	checkins := []models.PatrolCheckIn{
		{CheckpointID: "a", EmployeeID: "e1", LocationVerified: true},
		{CheckpointID: "a", EmployeeID: "e2", LocationVerified: false},
		{CheckpointID: "b", EmployeeID: "e1", LocationVerified: true},
	}

	stats := ComputeStats(checkins, cps)
	assert.Equal(t, 3, stats.TotalCheckins)
	assert.Equal(t, 2, stats.VerifiedCheckins)
	assert.InDelta(t, 66.666, stats.VerificationRate, 0.01)
	assert.Equal(t, 2, stats.CheckpointsVisited)
	assert.Equal(t, 4, stats.TotalCheckpoints)
	assert.InDelta(t, 50.0, stats.CoverageRate, 1e-9)
	assert.Equal(t, 2, stats.ActiveOfficers)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil)
	assert.Zero(t, stats.VerificationRate)
	assert.Zero(t, stats.CoverageRate)
	assert.Zero(t, stats.ActiveOfficers)
}

func TestComputeStatsVisitToDeactivatedCheckpointNotCounted(t *testing.T) {
	// a check-in against a checkpoint that was deactivated later in the day
	// still counts toward check-ins but not toward coverage
	cps := []models.Checkpoint{{ID: "a"}}
	checkins := []models.PatrolCheckIn{
		{CheckpointID: "a", EmployeeID: "e1", LocationVerified: true},
		{CheckpointID: "gone", EmployeeID: "e1", LocationVerified: true},
	}
	stats := ComputeStats(checkins, cps)
	assert.Equal(t, 2, stats.TotalCheckins)
	assert.Equal(t, 1, stats.CheckpointsVisited)
	assert.InDelta(t, 100.0, stats.CoverageRate, 1e-9)
}
