// Package defects tracks incidents and faults reported during patrols.
package defects

import (
	"context"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/checkpoints"
	"Backend-GuardPoint/src/services/directory"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Notifier dispatches a "defect reported" event. Implementations must not
// block; failures are logged and swallowed, never surfaced to the caller.
type Notifier interface {
	DefectReported(defect models.Defect)
}

type Service struct {
	db          *database.Mongo
	directory   *directory.Service
	checkpoints *checkpoints.Service
	notifier    Notifier
}

func NewService(db *database.Mongo, dir *directory.Service, cps *checkpoints.Service, notifier Notifier) *Service {
	return &Service{db: db, directory: dir, checkpoints: cps, notifier: notifier}
}

// Report creates a defect with status open, resolving the reporter (and the
// optional checkpoint / assignee) through the directory.
func (s *Service) Report(ctx context.Context, reporterID string, input models.DefectCreate) (*models.Defect, error) {
	reporter, err := s.directory.GetEmployee(ctx, reporterID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	defect := models.Defect{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		SiteID:      input.SiteID,
		SiteName:    input.SiteName,
		Location:    input.Location,
		Severity:    input.Severity,
		Status:      models.DefectOpen,
		Photos:      input.Photos,
		ReportedBy:  models.PersonRef{ID: reporter.ID, Name: reporter.Name},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Latitude != nil && input.Longitude != nil {
		defect.Coordinate = &models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}
	if input.CheckpointID != "" {
		cp, err := s.checkpoints.Get(ctx, input.CheckpointID)
		if err != nil {
			return nil, err
		}
		defect.CheckpointID = cp.ID
		defect.CheckpointName = cp.Name
		if defect.SiteID == "" {
			defect.SiteID = cp.SiteID
			defect.SiteName = cp.SiteName
		}
	}
	if input.AssignedToID != "" {
		assignee, err := s.directory.GetEmployee(ctx, input.AssignedToID)
		if err != nil {
			return nil, err
		}
		defect.AssignedTo = &models.PersonRef{ID: assignee.ID, Name: assignee.Name}
	}

	if _, err := s.db.Defects.InsertOne(ctx, defect); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.DefectReported(defect)
	}
	return &defect, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Defect, error) {
	var defect models.Defect
	err := s.db.Defects.FindOne(ctx, bson.M{"_id": id}).Decode(&defect)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "defect not found")
	}
	if err != nil {
		return nil, err
	}
	return &defect, nil
}

// List returns defects, newest first, optionally filtered by site and status.
func (s *Service) List(ctx context.Context, siteID, status string) ([]models.Defect, error) {
	filter := bson.M{}
	if siteID != "" {
		filter["siteId"] = siteID
	}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.db.Defects.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	defects := []models.Defect{}
	if err := cursor.All(ctx, &defects); err != nil {
		return nil, err
	}
	return defects, nil
}

// Update applies a generic field patch. When the patch moves status into
// "resolved" from anything else, resolvedAt/resolvedBy are stamped here, the
// same rule as Resolve — two paths, one behavior. There is no transition
// guard: a blind update can re-open a resolved defect.
func (s *Service) Update(ctx context.Context, id, actorID string, patch models.DefectUpdate) (*models.Defect, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Severity != nil {
		set["severity"] = *patch.Severity
	}
	if patch.ResolutionNotes != nil {
		set["resolutionNotes"] = *patch.ResolutionNotes
	}
	if patch.Latitude != nil && patch.Longitude != nil {
		set["coordinate"] = models.Coordinate{Latitude: *patch.Latitude, Longitude: *patch.Longitude}
	}
	if patch.AssignedToID != nil {
		if *patch.AssignedToID == "" {
			set["assignedTo"] = nil
		} else {
			assignee, err := s.directory.GetEmployee(ctx, *patch.AssignedToID)
			if err != nil {
				return nil, err
			}
			set["assignedTo"] = models.PersonRef{ID: assignee.ID, Name: assignee.Name}
		}
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
		if *patch.Status == models.DefectResolved && existing.Status != models.DefectResolved {
			resolver, err := s.directory.GetEmployee(ctx, actorID)
			if err != nil {
				return nil, err
			}
			set["resolvedAt"] = time.Now().UTC()
			set["resolvedBy"] = models.PersonRef{ID: resolver.ID, Name: resolver.Name}
		}
	}

	res, err := s.db.Defects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.New(apperr.KindNotFound, "defect not found")
	}
	return s.Get(ctx, id)
}

// Resolve marks the defect resolved, stamping resolvedAt/resolvedBy. Calling
// it again re-stamps with the latest resolver.
func (s *Service) Resolve(ctx context.Context, id, resolverID, resolutionNotes string) (*models.Defect, error) {
	resolver, err := s.directory.GetEmployee(ctx, resolverID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set := bson.M{
		"status":     models.DefectResolved,
		"resolvedAt": now,
		"resolvedBy": models.PersonRef{ID: resolver.ID, Name: resolver.Name},
		"updatedAt":  now,
	}
	if resolutionNotes != "" {
		set["resolutionNotes"] = resolutionNotes
	}

	var defect models.Defect
	err = s.db.Defects.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&defect)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "defect not found")
	}
	if err != nil {
		return nil, err
	}
	return &defect, nil
}

// AddPhotos appends photo references; the list only ever grows.
func (s *Service) AddPhotos(ctx context.Context, id string, photos []string) (*models.Defect, error) {
	if len(photos) == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "no photos supplied")
	}

	var defect models.Defect
	err := s.db.Defects.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"photos": bson.M{"$each": photos}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&defect)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "defect not found")
	}
	if err != nil {
		return nil, err
	}
	return &defect, nil
}

// Stats aggregates defects for the optional site scope.
func (s *Service) Stats(ctx context.Context, siteID string) (*models.DefectStats, error) {
	filter := bson.M{}
	if siteID != "" {
		filter["siteId"] = siteID
	}

	cursor, err := s.db.Defects.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	defects := []models.Defect{}
	if err := cursor.All(ctx, &defects); err != nil {
		return nil, err
	}

	stats := ComputeStats(defects)
	return &stats, nil
}
