package attendance

import (
	"context"
	"testing"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockDirectory) GetJob(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockDirectory) IsAssigned(ctx context.Context, jobID, employeeID string) (bool, error) {
	args := m.Called(ctx, jobID, employeeID)
	return args.Bool(0), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, session models.AttendanceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStore) FindOpen(ctx context.Context, employeeID string) (*models.AttendanceSession, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSession), args.Error(1)
}

func (m *MockStore) Close(ctx context.Context, sessionID string, close SessionClose) (*models.AttendanceSession, error) {
	args := m.Called(ctx, sessionID, close)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceSession), args.Error(1)
}

func (m *MockStore) ListCompleted(ctx context.Context, employeeID, from, to string) ([]models.AttendanceSession, error) {
	args := m.Called(ctx, employeeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceSession), args.Error(1)
}

func newTestService(store Store, dir Directory) *Service {
	return &Service{
		store:        store,
		directory:    dir,
		radiusMeters: 500,
		now:          func() time.Time { return time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC) },
	}
}

func ptr(f float64) *float64 { return &f }

func testEmployee() *models.Employee {
	return &models.Employee{ID: "emp-1", Name: "Priya Shah"}
}

func testJob() *models.Job {
	return &models.Job{
		ID:              "job-1",
		Name:            "Etihad Stadium Steward",
		RequireLocation: true,
		Coordinate:      &models.Coordinate{Latitude: 53.4831, Longitude: -2.2004},
	}
}

func TestClockIn(t *testing.T) {
	ctx := context.Background()

	t.Run("OpensVerifiedSession", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		dir.On("GetEmployee", ctx, "emp-1").Return(testEmployee(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)
		dir.On("IsAssigned", ctx, "job-1", "emp-1").Return(true, nil)
		store.On("Insert", ctx, mock.AnythingOfType("models.AttendanceSession")).Return(nil)

		session, err := svc.ClockIn(ctx, "emp-1", models.ClockInRequest{
			JobID:     "job-1",
			Latitude:  ptr(53.4835),
			Longitude: ptr(-2.2000),
		})
		assert.NoError(t, err)
		assert.True(t, session.Open)
		assert.True(t, session.LocationVerified)
		assert.Equal(t, "2025-03-10", session.Date)
		store.AssertExpectations(t)
	})

	t.Run("SecondClockInFailsAlreadyClockedIn", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		dir.On("GetEmployee", ctx, "emp-1").Return(testEmployee(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)
		dir.On("IsAssigned", ctx, "job-1", "emp-1").Return(true, nil)
		// the unique index rejects the second open session
		store.On("Insert", ctx, mock.AnythingOfType("models.AttendanceSession")).Return(ErrOpenSessionExists)

		_, err := svc.ClockIn(ctx, "emp-1", models.ClockInRequest{
			JobID:     "job-1",
			Latitude:  ptr(53.4835),
			Longitude: ptr(-2.2000),
		})
		assert.True(t, apperr.Is(err, apperr.KindAlreadyClockedIn), "got %v", err)
	})

	t.Run("UnassignedEmployeeFailsNotAssigned", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		dir.On("GetEmployee", ctx, "emp-1").Return(testEmployee(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)
		dir.On("IsAssigned", ctx, "job-1", "emp-1").Return(false, nil)

		_, err := svc.ClockIn(ctx, "emp-1", models.ClockInRequest{
			JobID:     "job-1",
			Latitude:  ptr(53.4835),
			Longitude: ptr(-2.2000),
		})
		assert.True(t, apperr.Is(err, apperr.KindNotAssigned), "got %v", err)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("OutOfRangeFailsBeforeInsert", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		dir.On("GetEmployee", ctx, "emp-1").Return(testEmployee(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)
		dir.On("IsAssigned", ctx, "job-1", "emp-1").Return(true, nil)

		_, err := svc.ClockIn(ctx, "emp-1", models.ClockInRequest{
			JobID:     "job-1",
			Latitude:  ptr(51.5074),
			Longitude: ptr(-0.1278),
		})
		assert.True(t, apperr.Is(err, apperr.KindOutOfRange), "got %v", err)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()

	openSession := func() *models.AttendanceSession {
		return &models.AttendanceSession{
			ID:         "sess-1",
			EmployeeID: "emp-1",
			JobID:      "job-1",
			ClockIn:    time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
			Open:       true,
		}
	}

	t.Run("ClosesOpenSessionWithHours", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		store.On("FindOpen", ctx, "emp-1").Return(openSession(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)

		hours := 8.5
		closed := openSession()
		closed.Open = false
		closed.HoursWorked = &hours
		store.On("Close", ctx, "sess-1", mock.AnythingOfType("attendance.SessionClose")).Return(closed, nil)

		session, err := svc.ClockOut(ctx, "emp-1", models.ClockOutRequest{
			Latitude:  ptr(53.4835),
			Longitude: ptr(-2.2000),
		})
		assert.NoError(t, err)
		assert.Equal(t, 8.5, *session.HoursWorked)

		close := store.Calls[1].Arguments.Get(2).(SessionClose)
		assert.Equal(t, 8.5, close.Hours)
	})

	t.Run("NoOpenSessionFailsNoOpenSession", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		store.On("FindOpen", ctx, "emp-1").Return(nil, nil)

		_, err := svc.ClockOut(ctx, "emp-1", models.ClockOutRequest{})
		assert.True(t, apperr.Is(err, apperr.KindNoOpenSession), "got %v", err)
		store.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ConcurrentCloseFailsNoOpenSession", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		store.On("FindOpen", ctx, "emp-1").Return(openSession(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)
		// conditional update matched nothing: another request closed it first
		store.On("Close", ctx, "sess-1", mock.AnythingOfType("attendance.SessionClose")).Return(nil, nil)

		_, err := svc.ClockOut(ctx, "emp-1", models.ClockOutRequest{
			Latitude:  ptr(53.4835),
			Longitude: ptr(-2.2000),
		})
		assert.True(t, apperr.Is(err, apperr.KindNoOpenSession), "got %v", err)
	})

	t.Run("DeletedJobClosesUnverified", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		store.On("FindOpen", ctx, "emp-1").Return(openSession(), nil)
		dir.On("GetJob", ctx, "job-1").Return(nil, apperr.New(apperr.KindNotFound, "job not found"))

		closed := openSession()
		closed.Open = false
		store.On("Close", ctx, "sess-1", mock.AnythingOfType("attendance.SessionClose")).Return(closed, nil)

		_, err := svc.ClockOut(ctx, "emp-1", models.ClockOutRequest{})
		assert.NoError(t, err)
	})

	t.Run("OutOfRangeClockOutRejected", func(t *testing.T) {
		dir := new(MockDirectory)
		store := new(MockStore)
		svc := newTestService(store, dir)

		store.On("FindOpen", ctx, "emp-1").Return(openSession(), nil)
		dir.On("GetJob", ctx, "job-1").Return(testJob(), nil)

		_, err := svc.ClockOut(ctx, "emp-1", models.ClockOutRequest{
			Latitude:  ptr(51.5074),
			Longitude: ptr(-0.1278),
		})
		assert.True(t, apperr.Is(err, apperr.KindOutOfRange), "got %v", err)
		store.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything)
	})
}
