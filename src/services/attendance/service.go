// Package attendance implements the GPS-gated clock-in/clock-out state machine.
//
// The one-open-session-per-employee invariant is enforced by the storage layer:
// inserts race against a partial unique index on employeeId filtered to open
// sessions, so two concurrent clock-ins cannot both succeed. Clock-out closes
// the session with a single conditional update on {_id, open: true}.
package attendance

import (
	"context"
	"errors"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/directory"
	"Backend-GuardPoint/src/services/geofence"

	"github.com/google/uuid"
)

// Directory resolves the people and jobs attendance operates on.
type Directory interface {
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	IsAssigned(ctx context.Context, jobID, employeeID string) (bool, error)
}

type Service struct {
	store        Store
	directory    Directory
	radiusMeters float64
	now          func() time.Time
}

func NewService(db *database.Mongo, dir *directory.Service, radiusMeters float64) *Service {
	return &Service{
		store:        NewStore(db),
		directory:    dir,
		radiusMeters: radiusMeters,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ClockIn opens a new session for the employee at the given job.
func (s *Service) ClockIn(ctx context.Context, employeeID string, req models.ClockInRequest) (*models.AttendanceSession, error) {
	emp, err := s.directory.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	job, err := s.directory.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.directory.IsAssigned(ctx, job.ID, employeeID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperr.New(apperr.KindNotAssigned, "you are not assigned to this job")
	}

	submitted := coordinateFrom(req.Latitude, req.Longitude)
	policy, err := geofence.Evaluate(job.RequireLocation, job.Coordinate, submitted, s.radiusMeters)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := models.AttendanceSession{
		ID:                uuid.NewString(),
		EmployeeID:        emp.ID,
		EmployeeName:      emp.Name,
		JobID:             job.ID,
		JobName:           job.Name,
		ClockIn:           now,
		Date:              now.Format("2006-01-02"),
		ClockInCoordinate: submitted,
		LocationVerified:  policy.Verified,
		Notes:             req.Notes,
		Open:              true,
	}

	if err := s.store.Insert(ctx, session); err != nil {
		if errors.Is(err, ErrOpenSessionExists) {
			return nil, apperr.New(apperr.KindAlreadyClockedIn, "you are already clocked in")
		}
		return nil, err
	}
	return &session, nil
}

// ClockOut closes the employee's open session and computes hours worked.
//
// If the session's job has since been deleted, or its geofence configuration
// was broken after clock-in, the close proceeds unverified rather than
// trapping the employee in an open session.
func (s *Service) ClockOut(ctx context.Context, employeeID string, req models.ClockOutRequest) (*models.AttendanceSession, error) {
	session, err := s.store.FindOpen(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperr.New(apperr.KindNoOpenSession, "you are not clocked in")
	}

	submitted := coordinateFrom(req.Latitude, req.Longitude)

	job, err := s.directory.GetJob(ctx, session.JobID)
	switch {
	case apperr.Is(err, apperr.KindNotFound):
		// job gone, close unverified
	case err != nil:
		return nil, err
	case job.RequireLocation:
		_, err := geofence.Evaluate(true, job.Coordinate, submitted, s.radiusMeters)
		if err != nil && !apperr.Is(err, apperr.KindMisconfiguredGeofence) {
			return nil, err
		}
	}

	now := s.now()
	hours, err := ComputeHours(session.ClockIn, now)
	if err != nil {
		return nil, err
	}

	closed, err := s.store.Close(ctx, session.ID, SessionClose{
		At:         now,
		Hours:      hours,
		Coordinate: submitted,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if closed == nil {
		// lost the race to a concurrent clock-out
		return nil, apperr.New(apperr.KindNoOpenSession, "you are not clocked in")
	}
	return closed, nil
}

// Status reports whether the employee has an open session.
func (s *Service) Status(ctx context.Context, employeeID string) (*models.ClockStatus, error) {
	session, err := s.store.FindOpen(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &models.ClockStatus{IsClockedIn: false}, nil
	}
	return &models.ClockStatus{IsClockedIn: true, CurrentSession: session}, nil
}

// ListCompleted is the read-only feed payroll and invoicing consume:
// closed sessions, optionally filtered by employee and date range (inclusive,
// YYYY-MM-DD).
func (s *Service) ListCompleted(ctx context.Context, employeeID, from, to string) ([]models.AttendanceSession, error) {
	return s.store.ListCompleted(ctx, employeeID, from, to)
}

func coordinateFrom(lat, lng *float64) *models.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lng}
}
