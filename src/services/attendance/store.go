package attendance

import (
	"context"
	"errors"
	"time"

	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrOpenSessionExists is returned by Store.Insert when the employee already
// holds an open session.
var ErrOpenSessionExists = errors.New("open session already exists")

// SessionClose carries the fields written when a session is closed.
type SessionClose struct {
	At         time.Time
	Hours      float64
	Coordinate *models.Coordinate
	Notes      string
}

// Store persists attendance sessions.
type Store interface {
	Insert(ctx context.Context, session models.AttendanceSession) error
	// FindOpen returns the employee's open session, or nil if there is none.
	FindOpen(ctx context.Context, employeeID string) (*models.AttendanceSession, error)
	// Close atomically closes the session if it is still open. Returns nil
	// when the session was already closed by a concurrent caller.
	Close(ctx context.Context, sessionID string, close SessionClose) (*models.AttendanceSession, error)
	ListCompleted(ctx context.Context, employeeID, from, to string) ([]models.AttendanceSession, error)
}

// mongoStore backs Store with the attendance_sessions collection. The
// one-open-session-per-employee invariant lives here: inserts race against a
// partial unique index on employeeId filtered to open sessions.
type mongoStore struct {
	db *database.Mongo
}

func NewStore(db *database.Mongo) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Insert(ctx context.Context, session models.AttendanceSession) error {
	_, err := s.db.Attendance.InsertOne(ctx, session)
	if mongo.IsDuplicateKeyError(err) {
		return ErrOpenSessionExists
	}
	return err
}

func (s *mongoStore) FindOpen(ctx context.Context, employeeID string) (*models.AttendanceSession, error) {
	var session models.AttendanceSession
	err := s.db.Attendance.FindOne(ctx, bson.M{"employeeId": employeeID, "open": true}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *mongoStore) Close(ctx context.Context, sessionID string, close SessionClose) (*models.AttendanceSession, error) {
	set := bson.M{
		"clockOut":    close.At,
		"hoursWorked": close.Hours,
		"open":        false,
	}
	if close.Coordinate != nil {
		set["clockOutCoordinate"] = close.Coordinate
	}
	if close.Notes != "" {
		set["notes"] = close.Notes
	}

	var closed models.AttendanceSession
	err := s.db.Attendance.FindOneAndUpdate(ctx,
		bson.M{"_id": sessionID, "open": true},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&closed)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &closed, nil
}

func (s *mongoStore) ListCompleted(ctx context.Context, employeeID, from, to string) ([]models.AttendanceSession, error) {
	filter := bson.M{"open": false}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}
	dateRange := bson.M{}
	if from != "" {
		dateRange["$gte"] = from
	}
	if to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	cursor, err := s.db.Attendance.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "clockIn", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []models.AttendanceSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
