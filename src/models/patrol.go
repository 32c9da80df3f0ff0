package models

import "time"

// PatrolAnswer is an officer's answer to one checkpoint question.
type PatrolAnswer struct {
	QuestionID string `bson:"questionId" json:"questionId"`
	Answer     string `bson:"answer" json:"answer"`
}

// PatrolCheckIn is one recorded visit to a checkpoint. Append-only; the only
// permitted mutation is appending photos. Checkpoint and job names are
// denormalized snapshots taken at visit time.
type PatrolCheckIn struct {
	ID                     string         `bson:"_id" json:"id"`
	CheckpointID           string         `bson:"checkpointId" json:"checkpointId"`
	CheckpointName         string         `bson:"checkpointName" json:"checkpointName"`
	EmployeeID             string         `bson:"employeeId" json:"employeeId"`
	EmployeeName           string         `bson:"employeeName" json:"employeeName"`
	SiteID                 string         `bson:"siteId,omitempty" json:"siteId,omitempty"`
	SiteName               string         `bson:"siteName,omitempty" json:"siteName,omitempty"`
	Coordinate             Coordinate     `bson:"coordinate" json:"coordinate"`
	DistanceFromCheckpoint float64        `bson:"distanceFromCheckpoint" json:"distanceFromCheckpoint"`
	LocationVerified       bool           `bson:"locationVerified" json:"locationVerified"`
	ScannedToken           bool           `bson:"scannedToken" json:"scannedToken"`
	Answers                []PatrolAnswer `bson:"answers,omitempty" json:"answers,omitempty"`
	Notes                  string         `bson:"notes,omitempty" json:"notes,omitempty"`
	Photos                 []string       `bson:"photos,omitempty" json:"photos,omitempty"`
	CheckedAt              time.Time      `bson:"checkedAt" json:"checkedAt"`

	// Derived for client display, never persisted.
	VerificationStatus string `bson:"-" json:"verificationStatus,omitempty"`
}

// PatrolCheckInRequest is the body of POST /patrols/check-in.
type PatrolCheckInRequest struct {
	CheckpointID string         `json:"checkpointId" validate:"required"`
	Latitude     float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64        `json:"longitude" validate:"gte=-180,lte=180"`
	ScannedToken bool           `json:"scannedToken"`
	Answers      []PatrolAnswer `json:"answers"`
	Notes        string         `json:"notes"`
}

// OverdueCheckpoint is one row of the missed-checkpoints report.
type OverdueCheckpoint struct {
	Checkpoint            Checkpoint `json:"checkpoint"`
	NeverChecked          bool       `json:"neverChecked"`
	LastCheckedAt         *time.Time `json:"lastCheckedAt,omitempty"`
	MinutesSinceLastCheck *float64   `json:"minutesSinceLastCheck,omitempty"`
	OverdueByMinutes      *float64   `json:"overdueByMinutes,omitempty"`
}

// PatrolStats is the per-day patrol aggregation.
type PatrolStats struct {
	TotalCheckins      int     `json:"totalCheckins"`
	VerifiedCheckins   int     `json:"verifiedCheckins"`
	VerificationRate   float64 `json:"verificationRate"`
	CheckpointsVisited int     `json:"checkpointsVisited"`
	TotalCheckpoints   int     `json:"totalCheckpoints"`
	CoverageRate       float64 `json:"coverageRate"`
	ActiveOfficers     int     `json:"activeOfficers"`
}
