package models

import "time"

// Job is one shift assignment at a client site. If RequireLocation is true,
// clock-in/out is geofence-gated against Coordinate; a gated job with no stored
// coordinate is an administrator misconfiguration.
type Job struct {
	ID                  string      `bson:"_id" json:"id"`
	Name                string      `bson:"name" json:"name"`
	Client              string      `bson:"client" json:"client"`
	Date                string      `bson:"date" json:"date"` // YYYY-MM-DD
	Coordinate          *Coordinate `bson:"coordinate,omitempty" json:"coordinate,omitempty"`
	RequireLocation     bool        `bson:"requireLocation" json:"requireLocation"`
	StartTime           string      `bson:"startTime,omitempty" json:"startTime,omitempty"` // HH:MM
	EndTime             string      `bson:"endTime,omitempty" json:"endTime,omitempty"`     // HH:MM
	AssignedEmployeeIDs []string    `bson:"assignedEmployeeIds,omitempty" json:"assignedEmployeeIds,omitempty"`
	CreatedAt           time.Time   `bson:"createdAt" json:"createdAt"`
}

// JobCreate is the body of POST /jobs.
type JobCreate struct {
	Name                string   `json:"name" validate:"required"`
	Client              string   `json:"client" validate:"required"`
	Date                string   `json:"date" validate:"required"`
	Latitude            *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RequireLocation     bool     `json:"requireLocation"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	AssignedEmployeeIDs []string `json:"assignedEmployeeIds"`
}

// JobUpdate is a partial update; AssignedEmployeeIDs replaces the list wholesale.
type JobUpdate struct {
	Name                *string   `json:"name"`
	Client              *string   `json:"client"`
	Date                *string   `json:"date"`
	Latitude            *float64  `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude           *float64  `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RequireLocation     *bool     `json:"requireLocation"`
	StartTime           *string   `json:"startTime"`
	EndTime             *string   `json:"endTime"`
	AssignedEmployeeIDs *[]string `json:"assignedEmployeeIds"`
}
