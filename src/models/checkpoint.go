package models

import "time"

// CheckpointQuestion is one question the officer answers during a patrol visit.
type CheckpointQuestion struct {
	ID        string   `bson:"id" json:"id"`
	Text      string   `bson:"text" json:"text"`
	Type      string   `bson:"type" json:"type"` // text, yes_no, choice
	Options   []string `bson:"options,omitempty" json:"options,omitempty"`
	Mandatory bool     `bson:"mandatory" json:"mandatory"`
}

// Checkpoint is a registered geofenced point to be physically visited on patrol.
// Deletion is a soft delete (isActive=false) so historic check-ins stay resolvable.
type Checkpoint struct {
	ID                    string               `bson:"_id" json:"id"`
	Name                  string               `bson:"name" json:"name"`
	Description           string               `bson:"description,omitempty" json:"description,omitempty"`
	SiteID                string               `bson:"siteId,omitempty" json:"siteId,omitempty"`
	SiteName              string               `bson:"siteName,omitempty" json:"siteName,omitempty"`
	Coordinate            Coordinate           `bson:"coordinate" json:"coordinate"`
	RadiusMeters          float64              `bson:"radiusMeters" json:"radiusMeters"`
	CheckFrequencyMinutes int                  `bson:"checkFrequencyMinutes" json:"checkFrequencyMinutes"`
	ScanToken             string               `bson:"scanToken" json:"scanToken"`
	Questions             []CheckpointQuestion `bson:"questions,omitempty" json:"questions,omitempty"`
	IsActive              bool                 `bson:"isActive" json:"isActive"`
	CreatedAt             time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// CheckpointCreate is the body of POST /checkpoints.
type CheckpointCreate struct {
	Name                  string               `json:"name" validate:"required"`
	Description           string               `json:"description"`
	SiteID                string               `json:"siteId"`
	SiteName              string               `json:"siteName"`
	Latitude              float64              `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude             float64              `json:"longitude" validate:"gte=-180,lte=180"`
	RadiusMeters          *float64             `json:"radiusMeters" validate:"omitempty,gt=0"`
	CheckFrequencyMinutes *int                 `json:"checkFrequencyMinutes" validate:"omitempty,gt=0"`
	Questions             []CheckpointQuestion `json:"questions"`
}

// CheckpointUpdate is a partial update; a non-nil Questions replaces the list
// wholesale, never merges.
type CheckpointUpdate struct {
	Name                  *string               `json:"name"`
	Description           *string               `json:"description"`
	SiteID                *string               `json:"siteId"`
	SiteName              *string               `json:"siteName"`
	Latitude              *float64              `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude             *float64              `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RadiusMeters          *float64              `json:"radiusMeters" validate:"omitempty,gt=0"`
	CheckFrequencyMinutes *int                  `json:"checkFrequencyMinutes" validate:"omitempty,gt=0"`
	Questions             *[]CheckpointQuestion `json:"questions"`
}
