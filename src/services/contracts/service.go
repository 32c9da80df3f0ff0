// Package contracts manages client contracts and their budget figures.
package contracts

import (
	"context"
	"math"
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

// Utilization derives the labor-cost figures for a contract from the annual
// salaries of the employees assigned to it.
func Utilization(contract models.Contract, employees []models.Employee) models.ContractView {
	view := models.ContractView{Contract: contract, EmployeeCount: len(employees)}
	for _, e := range employees {
		view.LaborCost += e.AnnualSalary
	}
	view.MonthlyLaborCost = round2(view.LaborCost / 12)
	view.BudgetRemaining = round2(contract.Budget - view.LaborCost)
	if contract.Budget > 0 {
		view.BudgetUtilization = round2(view.LaborCost / contract.Budget * 100)
	}
	return view
}

func (s *Service) Create(ctx context.Context, input models.ContractCreate) (*models.Contract, error) {
	status := input.Status
	if status == "" {
		status = models.ContractActive
	}

	contract := models.Contract{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Client:      input.Client,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.db.Contracts.InsertOne(ctx, contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// List returns all contracts with their utilization figures.
func (s *Service) List(ctx context.Context) ([]models.ContractView, error) {
	cursor, err := s.db.Contracts.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contracts := []models.Contract{}
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, err
	}

	views := make([]models.ContractView, 0, len(contracts))
	for _, c := range contracts {
		employees, err := s.assignedEmployees(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, Utilization(c, employees))
	}
	return views, nil
}

// Get returns one contract with utilization figures and its employee list.
func (s *Service) Get(ctx context.Context, id string) (*models.ContractView, error) {
	var contract models.Contract
	err := s.db.Contracts.FindOne(ctx, bson.M{"_id": id}).Decode(&contract)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "contract not found")
	}
	if err != nil {
		return nil, err
	}

	employees, err := s.assignedEmployees(ctx, id)
	if err != nil {
		return nil, err
	}
	view := Utilization(contract, employees)
	view.Employees = employees
	return &view, nil
}

func (s *Service) Update(ctx context.Context, id string, patch models.ContractUpdate) (*models.Contract, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Client != nil {
		set["client"] = *patch.Client
	}
	if patch.Budget != nil {
		set["budget"] = *patch.Budget
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	if len(set) > 0 {
		res, err := s.db.Contracts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperr.New(apperr.KindNotFound, "contract not found")
		}
	}

	var contract models.Contract
	if err := s.db.Contracts.FindOne(ctx, bson.M{"_id": id}).Decode(&contract); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.KindNotFound, "contract not found")
		}
		return nil, err
	}
	return &contract, nil
}

// Delete removes the contract and unassigns its employees first.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Employees.UpdateMany(ctx,
		bson.M{"contractId": id},
		bson.M{"$set": bson.M{"contractId": nil}})
	if err != nil {
		return err
	}

	res, err := s.db.Contracts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.KindNotFound, "contract not found")
	}
	return nil
}

func (s *Service) assignedEmployees(ctx context.Context, contractID string) ([]models.Employee, error) {
	cursor, err := s.db.Employees.Find(ctx, bson.M{"contractId": contractID})
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

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
