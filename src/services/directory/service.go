// Package directory manages employees and jobs and answers assignment lookups
// for the attendance gate.
package directory

import (
	"context"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	db *database.Mongo
}

func NewService(db *database.Mongo) *Service {
	return &Service{db: db}
}

// ===== Employees =====

func (s *Service) CreateEmployee(ctx context.Context, input models.EmployeeCreate) (*models.Employee, error) {
	taxCode := input.TaxCode
	if taxCode == "" {
		taxCode = models.DefaultTaxCode
	}

	emp := models.Employee{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Department:   input.Department,
		Position:     input.Position,
		Phone:        input.Phone,
		AnnualSalary: input.AnnualSalary,
		ContractID:   input.ContractID,
		BankAccount:  input.BankAccount,
		SortCode:     input.SortCode,
		TaxCode:      taxCode,
		NINumber:     input.NINumber,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.db.Employees.InsertOne(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.Employees.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "employee not found")
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	cursor, err := s.db.Employees.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, patch models.EmployeeUpdate) (*models.Employee, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Department != nil {
		set["department"] = *patch.Department
	}
	if patch.Position != nil {
		set["position"] = *patch.Position
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.AnnualSalary != nil {
		set["annualSalary"] = *patch.AnnualSalary
	}
	if patch.ContractID != nil {
		set["contractId"] = *patch.ContractID
	}
	if patch.BankAccount != nil {
		set["bankAccount"] = *patch.BankAccount
	}
	if patch.SortCode != nil {
		set["sortCode"] = *patch.SortCode
	}
	if patch.TaxCode != nil {
		set["taxCode"] = *patch.TaxCode
	}
	if patch.NINumber != nil {
		set["niNumber"] = *patch.NINumber
	}

	if len(set) > 0 {
		res, err := s.db.Employees.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.New(apperr.KindNotFound, "employee not found")
		}
	}
	return s.GetEmployee(ctx, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.db.Employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.KindNotFound, "employee not found")
	}
	return nil
}

// ===== Jobs =====

func (s *Service) CreateJob(ctx context.Context, input models.JobCreate) (*models.Job, error) {
	job := models.Job{
		ID:                  uuid.NewString(),
		Name:                input.Name,
		Client:              input.Client,
		Date:                input.Date,
		RequireLocation:     input.RequireLocation,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		AssignedEmployeeIDs: input.AssignedEmployeeIDs,
		CreatedAt:           time.Now().UTC(),
	}
	if input.Latitude != nil && input.Longitude != nil {
		job.Coordinate = &models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	if _, err := s.db.Jobs.InsertOne(ctx, job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Service) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := s.db.Jobs.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "job not found")
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Service) ListJobs(ctx context.Context) ([]models.Job, error) {
	cursor, err := s.db.Jobs.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Service) UpdateJob(ctx context.Context, id string, patch models.JobUpdate) (*models.Job, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Client != nil {
		set["client"] = *patch.Client
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Latitude != nil && patch.Longitude != nil {
		set["coordinate"] = models.Coordinate{Latitude: *patch.Latitude, Longitude: *patch.Longitude}
	}
	if patch.RequireLocation != nil {
		set["requireLocation"] = *patch.RequireLocation
	}
	if patch.StartTime != nil {
		set["startTime"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		set["endTime"] = *patch.EndTime
	}
	if patch.AssignedEmployeeIDs != nil {
		set["assignedEmployeeIds"] = *patch.AssignedEmployeeIDs
	}

	if len(set) > 0 {
		res, err := s.db.Jobs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.New(apperr.KindNotFound, "job not found")
		}
	}
	return s.GetJob(ctx, id)
}

func (s *Service) DeleteJob(ctx context.Context, id string) error {
	res, err := s.db.Jobs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.KindNotFound, "job not found")
	}
	return nil
}

// IsAssigned reports whether the employee is on the job's assignment list.
func (s *Service) IsAssigned(ctx context.Context, jobID, employeeID string) (bool, error) {
	count, err := s.db.Jobs.CountDocuments(ctx, bson.M{
		"_id":                 jobID,
		"assignedEmployeeIds": employeeID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
