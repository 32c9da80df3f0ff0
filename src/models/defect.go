package models

import "time"

// Defect severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Defect statuses. There is no enforced transition guard: a blind status update
// can move a resolved defect back to open.
const (
	DefectOpen       = "open"
	DefectInProgress = "in_progress"
	DefectResolved   = "resolved"
	DefectClosed     = "closed"
)

// PersonRef is a denormalized employee reference.
type PersonRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Defect is an incident or fault reported during a patrol or generally.
// resolvedAt/resolvedBy are set together, exactly when status enters "resolved".
type Defect struct {
	ID              string      `bson:"_id" json:"id"`
	Title           string      `bson:"title" json:"title"`
	Description     string      `bson:"description,omitempty" json:"description,omitempty"`
	SiteID          string      `bson:"siteId,omitempty" json:"siteId,omitempty"`
	SiteName        string      `bson:"siteName,omitempty" json:"siteName,omitempty"`
	CheckpointID    string      `bson:"checkpointId,omitempty" json:"checkpointId,omitempty"`
	CheckpointName  string      `bson:"checkpointName,omitempty" json:"checkpointName,omitempty"`
	Location        string      `bson:"location,omitempty" json:"location,omitempty"`
	Coordinate      *Coordinate `bson:"coordinate,omitempty" json:"coordinate,omitempty"`
	Severity        string      `bson:"severity" json:"severity"`
	Status          string      `bson:"status" json:"status"`
	Photos          []string    `bson:"photos,omitempty" json:"photos,omitempty"`
	ReportedBy      PersonRef   `bson:"reportedBy" json:"reportedBy"`
	AssignedTo      *PersonRef  `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	ResolutionNotes string      `bson:"resolutionNotes,omitempty" json:"resolutionNotes,omitempty"`
	ResolvedAt      *time.Time  `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ResolvedBy      *PersonRef  `bson:"resolvedBy,omitempty" json:"resolvedBy,omitempty"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// DefectCreate is the body of POST /defects.
type DefectCreate struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	SiteID       string   `json:"siteId"`
	SiteName     string   `json:"siteName"`
	CheckpointID string   `json:"checkpointId"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Severity     string   `json:"severity" validate:"required,oneof=low medium high critical"`
	Photos       []string `json:"photos"`
	AssignedToID string   `json:"assignedToId"`
}

// DefectUpdate is a generic field patch. A patch that moves status into
// "resolved" auto-stamps resolvedAt/resolvedBy, same as the resolve endpoint.
type DefectUpdate struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Severity        *string  `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status          *string  `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	AssignedToID    *string  `json:"assignedToId"`
	ResolutionNotes *string  `json:"resolutionNotes"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// DefectStats is the defect aggregation. BySeverity excludes resolved defects;
// urgentCount counts critical/high defects not yet resolved.
type DefectStats struct {
	Total       int64            `json:"total"`
	ByStatus    map[string]int64 `json:"byStatus"`
	BySeverity  map[string]int64 `json:"bySeverity"`
	UrgentCount int64            `json:"urgentCount"`
}
