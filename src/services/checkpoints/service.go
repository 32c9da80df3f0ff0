// Package checkpoints manages the registry of geofenced patrol checkpoints.
package checkpoints

import (
	"context"
	"fmt"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/qrcode"
	"Backend-GuardPoint/src/services/geo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	db               *database.Mongo
	defaultRadius    float64
	defaultFrequency int
	qrDir            string
}

func NewService(db *database.Mongo, defaultRadius float64, defaultFrequency int, qrDir string) *Service {
	return &Service{
		db:               db,
		defaultRadius:    defaultRadius,
		defaultFrequency: defaultFrequency,
		qrDir:            qrDir,
	}
}

// ScanToken derives the checkpoint's opaque scan token from its id. Stable
// across restarts so printed QR signage never goes stale.
func ScanToken(checkpointID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("checkpoint:"+checkpointID)).String()
}

// QRPayload is the string embedded in the checkpoint's QR code.
func QRPayload(checkpointID, token string) string {
	return fmt.Sprintf("guardpoint://checkpoint/%s?token=%s", checkpointID, token)
}

func (s *Service) Create(ctx context.Context, input models.CheckpointCreate) (*models.Checkpoint, error) {
	coord := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := geo.Validate(coord); err != nil {
		return nil, err
	}

	radius := s.defaultRadius
	if input.RadiusMeters != nil {
		radius = *input.RadiusMeters
	}
	frequency := s.defaultFrequency
	if input.CheckFrequencyMinutes != nil {
		frequency = *input.CheckFrequencyMinutes
	}
	if radius <= 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "radiusMeters must be positive")
	}
	if frequency <= 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "checkFrequencyMinutes must be positive")
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	cp := models.Checkpoint{
		ID:                    id,
		Name:                  input.Name,
		Description:           input.Description,
		SiteID:                input.SiteID,
		SiteName:              input.SiteName,
		Coordinate:            coord,
		RadiusMeters:          radius,
		CheckFrequencyMinutes: frequency,
		ScanToken:             ScanToken(id),
		Questions:             input.Questions,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if _, err := s.db.Checkpoints.InsertOne(ctx, cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// Get resolves a checkpoint by id, active or not; deactivated checkpoints stay
// resolvable for audit history.
func (s *Service) Get(ctx context.Context, id string) (*models.Checkpoint, error) {
	var cp models.Checkpoint
	err := s.db.Checkpoints.FindOne(ctx, bson.M{"_id": id}).Decode(&cp)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindCheckpointNotFound, "checkpoint not found")
	}
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// GetActive resolves a checkpoint and requires it to be active.
func (s *Service) GetActive(ctx context.Context, id string) (*models.Checkpoint, error) {
	cp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cp.IsActive {
		return nil, apperr.New(apperr.KindCheckpointNotFound, "checkpoint is no longer active")
	}
	return cp, nil
}

// ListActive returns active checkpoints, optionally scoped to a site.
func (s *Service) ListActive(ctx context.Context, siteID string) ([]models.Checkpoint, error) {
	filter := bson.M{"isActive": true}
	if siteID != "" {
		filter["siteId"] = siteID
	}

	cursor, err := s.db.Checkpoints.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checkpoints := []models.Checkpoint{}
	if err := cursor.All(ctx, &checkpoints); err != nil {
		return nil, err
	}
	return checkpoints, nil
}

// Update applies a partial patch. A non-nil question list replaces the stored
// list wholesale.
func (s *Service) Update(ctx context.Context, id string, patch models.CheckpointUpdate) (*models.Checkpoint, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.SiteID != nil {
		set["siteId"] = *patch.SiteID
	}
	if patch.SiteName != nil {
		set["siteName"] = *patch.SiteName
	}
	if patch.Latitude != nil && patch.Longitude != nil {
		coord := models.Coordinate{Latitude: *patch.Latitude, Longitude: *patch.Longitude}
		if err := geo.Validate(coord); err != nil {
			return nil, err
		}
		set["coordinate"] = coord
	}
	if patch.RadiusMeters != nil {
		if *patch.RadiusMeters <= 0 {
			return nil, apperr.New(apperr.KindInvalidInput, "radiusMeters must be positive")
		}
		set["radiusMeters"] = *patch.RadiusMeters
	}
	if patch.CheckFrequencyMinutes != nil {
		if *patch.CheckFrequencyMinutes <= 0 {
			return nil, apperr.New(apperr.KindInvalidInput, "checkFrequencyMinutes must be positive")
		}
		set["checkFrequencyMinutes"] = *patch.CheckFrequencyMinutes
	}
	if patch.Questions != nil {
		set["questions"] = *patch.Questions
	}

	res, err := s.db.Checkpoints.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.New(apperr.KindCheckpointNotFound, "checkpoint not found")
	}
	return s.Get(ctx, id)
}

// Deactivate soft-deletes the checkpoint.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	res, err := s.db.Checkpoints.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.New(apperr.KindCheckpointNotFound, "checkpoint not found")
	}
	return nil
}

// RenderQR writes the checkpoint's QR PNG and returns the file path.
func (s *Service) RenderQR(ctx context.Context, id string) (string, error) {
	cp, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return qrcode.GenerateQRCode(QRPayload(cp.ID, cp.ScanToken), s.qrDir, fmt.Sprintf("checkpoint_%s", cp.ID))
}
