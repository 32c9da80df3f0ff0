package models

import "time"

// AttendanceSession is one continuous presence interval for one employee at one
// job. Open means clockOut is still null; exactly one open session may exist per
// employee (enforced by a partial unique index on employeeId where open=true).
type AttendanceSession struct {
	ID                 string      `bson:"_id" json:"id"`
	EmployeeID         string      `bson:"employeeId" json:"employeeId"`
	EmployeeName       string      `bson:"employeeName" json:"employeeName"`
	JobID              string      `bson:"jobId" json:"jobId"`
	JobName            string      `bson:"jobName" json:"jobName"`
	ClockIn            time.Time   `bson:"clockIn" json:"clockIn"`
	ClockOut           *time.Time  `bson:"clockOut,omitempty" json:"clockOut,omitempty"`
	Date               string      `bson:"date" json:"date"` // UTC calendar day of clockIn, YYYY-MM-DD
	HoursWorked        *float64    `bson:"hoursWorked,omitempty" json:"hoursWorked,omitempty"`
	ClockInCoordinate  *Coordinate `bson:"clockInCoordinate,omitempty" json:"clockInCoordinate,omitempty"`
	ClockOutCoordinate *Coordinate `bson:"clockOutCoordinate,omitempty" json:"clockOutCoordinate,omitempty"`
	LocationVerified   bool        `bson:"locationVerified" json:"locationVerified"`
	Notes              string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Open               bool        `bson:"open" json:"-"`
}

// ClockInRequest is the body of POST /staff/:employeeId/clock-in.
type ClockInRequest struct {
	JobID     string   `json:"jobId" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Notes     string   `json:"notes"`
}

// ClockOutRequest is the body of POST /staff/:employeeId/clock-out.
type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Notes     string   `json:"notes"`
}

// ClockStatus is the response of GET /staff/:employeeId/status.
type ClockStatus struct {
	IsClockedIn    bool               `json:"isClockedIn"`
	CurrentSession *AttendanceSession `json:"currentSession,omitempty"`
}
