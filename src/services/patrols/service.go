// Package patrols is the append-only ledger of checkpoint visits and its
// derived coverage reports.
package patrols

import (
	"context"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/checkpoints"
	"Backend-GuardPoint/src/services/directory"
	"Backend-GuardPoint/src/services/geo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	db          *database.Mongo
	checkpoints *checkpoints.Service
	directory   *directory.Service
	now         func() time.Time
}

func NewService(db *database.Mongo, cps *checkpoints.Service, dir *directory.Service) *Service {
	return &Service{
		db:          db,
		checkpoints: cps,
		directory:   dir,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn records one visit to an active checkpoint. The distance is always
// computed and stored, even when the visit verifies via scan token, so GPS
// accuracy can be audited later.
func (s *Service) CheckIn(ctx context.Context, employeeID string, req models.PatrolCheckInRequest) (*models.PatrolCheckIn, error) {
	emp, err := s.directory.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	cp, err := s.checkpoints.GetActive(ctx, req.CheckpointID)
	if err != nil {
		return nil, err
	}

	submitted := models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	distance, err := geo.DistanceMeters(cp.Coordinate, submitted)
	if err != nil {
		return nil, err
	}

	record := models.PatrolCheckIn{
		ID:                     uuid.NewString(),
		CheckpointID:           cp.ID,
		CheckpointName:         cp.Name,
		EmployeeID:             emp.ID,
		EmployeeName:           emp.Name,
		SiteID:                 cp.SiteID,
		SiteName:               cp.SiteName,
		Coordinate:             submitted,
		DistanceFromCheckpoint: distance,
		LocationVerified:       VisitVerified(distance, cp.RadiusMeters, req.ScannedToken),
		ScannedToken:           req.ScannedToken,
		Answers:                req.Answers,
		Notes:                  req.Notes,
		CheckedAt:              s.now(),
	}

	if _, err := s.db.Patrols.InsertOne(ctx, record); err != nil {
		return nil, err
	}

	record.VerificationStatus = StatusUnverified
	if record.LocationVerified {
		record.VerificationStatus = StatusVerified
	}
	return &record, nil
}

// AppendPhotos is the only permitted mutation of a ledger record.
func (s *Service) AppendPhotos(ctx context.Context, checkInID string, photos []string) (*models.PatrolCheckIn, error) {
	if len(photos) == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "no photos supplied")
	}

	var record models.PatrolCheckIn
	err := s.db.Patrols.FindOneAndUpdate(ctx,
		bson.M{"_id": checkInID},
		bson.M{"$push": bson.M{"photos": bson.M{"$each": photos}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "patrol check-in not found")
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns ledger entries, newest first, optionally scoped to a site, with
// paging.
func (s *Service) List(ctx context.Context, siteID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if siteID != "" {
		filter["siteId"] = siteID
	}

	total, err := s.db.Patrols.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	cursor, err := s.db.Patrols.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "checkedAt", Value: -1}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.PatrolCheckIn{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].VerificationStatus = StatusUnverified
		if records[i].LocationVerified {
			records[i].VerificationStatus = StatusVerified
		}
	}
	return models.NewPaginatedResponse(records, total, params), nil
}

// MissedCheckpoints is the point-in-time overdue report: for every active
// checkpoint (optionally per site), never-checked or past its revisit
// frequency. Computed on demand; a scheduler polls this and dispatches alerts.
func (s *Service) MissedCheckpoints(ctx context.Context, siteID string) ([]models.OverdueCheckpoint, error) {
	cps, err := s.checkpoints.ListActive(ctx, siteID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	missed := []models.OverdueCheckpoint{}
	for _, cp := range cps {
		last, err := s.lastCheckIn(ctx, cp.ID)
		if err != nil {
			return nil, err
		}
		if row := OverdueInfo(cp, last, now); row != nil {
			missed = append(missed, *row)
		}
	}
	return missed, nil
}

func (s *Service) lastCheckIn(ctx context.Context, checkpointID string) (*time.Time, error) {
	var record models.PatrolCheckIn
	err := s.db.Patrols.FindOne(ctx,
		bson.M{"checkpointId": checkpointID},
		options.FindOne().SetSort(bson.D{{Key: "checkedAt", Value: -1}}),
	).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record.CheckedAt, nil
}

// Stats aggregates the ledger for one UTC day (default today) and optional
// site scope.
func (s *Service) Stats(ctx context.Context, siteID, date string) (*models.PatrolStats, error) {
	day := date
	if day == "" {
		day = s.now().Format("2006-01-02")
	}
	dayStart, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidInput, "invalid date %q, want YYYY-MM-DD", date)
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	filter := bson.M{"checkedAt": bson.M{"$gte": dayStart, "$lt": dayEnd}}
	if siteID != "" {
		filter["siteId"] = siteID
	}

	cursor, err := s.db.Patrols.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checkins := []models.PatrolCheckIn{}
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, err
	}

	cps, err := s.checkpoints.ListActive(ctx, siteID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(checkins, cps)
	return &stats, nil
}
