// Package payroll builds payslips and the dashboard aggregation. Tax and NI
// figures are pass-through; nothing here computes PAYE/NI bands.
package payroll

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/directory"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	db        *database.Mongo
	directory *directory.Service
}

func NewService(db *database.Mongo, dir *directory.Service) *Service {
	return &Service{db: db, directory: dir}
}

// BuildPayslip computes the payslip amounts for an employee:
// monthly gross = annual/12, net = gross + bonuses − (tax + NI + other).
func BuildPayslip(emp models.Employee, input models.PayslipCreate) models.Payslip {
	monthlyGross := emp.AnnualSalary / 12

	otherTotal := 0.0
	for _, d := range input.OtherDeductions {
		otherTotal += d.Amount
	}
	net := monthlyGross + input.Bonuses - (input.TaxDeduction + input.NIDeduction + otherTotal)

	return models.Payslip{
		ID:              uuid.NewString(),
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		PeriodMonth:     input.PeriodMonth,
		PeriodYear:      input.PeriodYear,
		GrossSalary:     round2(monthlyGross),
		TaxDeduction:    input.TaxDeduction,
		NIDeduction:     input.NIDeduction,
		OtherDeductions: input.OtherDeductions,
		Bonuses:         input.Bonuses,
		NetSalary:       round2(net),
		CreatedAt:       time.Now().UTC(),
	}
}

func (s *Service) Create(ctx context.Context, input models.PayslipCreate) (*models.Payslip, error) {
	emp, err := s.directory.GetEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	payslip := BuildPayslip(*emp, input)
	if _, err := s.db.Payslips.InsertOne(ctx, payslip); err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Payslip, error) {
	var payslip models.Payslip
	err := s.db.Payslips.FindOne(ctx, bson.M{"_id": id}).Decode(&payslip)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.KindNotFound, "payslip not found")
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (s *Service) List(ctx context.Context) ([]models.Payslip, error) {
	cursor, err := s.db.Payslips.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payslips := []models.Payslip{}
	if err := cursor.All(ctx, &payslips); err != nil {
		return nil, err
	}
	return payslips, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	res, err := s.db.Payslips.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.KindNotFound, "payslip not found")
	}
	return nil
}

// Dashboard computes the headline payroll figures.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	employees, err := s.directory.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	payslips, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeDashboard(employees, payslips)
	return &stats, nil
}

// ComputeDashboard aggregates employees and payslips into the dashboard view.
func ComputeDashboard(employees []models.Employee, payslips []models.Payslip) models.DashboardStats {
	stats := models.DashboardStats{
		TotalEmployees: len(employees),
		Departments:    []models.DepartmentStats{},
		RecentPayslips: []models.RecentPayslip{},
	}

	totalAnnual := 0.0
	deptIndex := map[string]int{}
	for _, emp := range employees {
		totalAnnual += emp.AnnualSalary

		dept := emp.Department
		if dept == "" {
			dept = "Unknown"
		}
		i, ok := deptIndex[dept]
		if !ok {
			i = len(stats.Departments)
			deptIndex[dept] = i
			stats.Departments = append(stats.Departments, models.DepartmentStats{Name: dept})
		}
		stats.Departments[i].Count++
		stats.Departments[i].TotalSalary += emp.AnnualSalary
	}

	if stats.TotalEmployees > 0 {
		stats.TotalMonthlyPayroll = round2(totalAnnual / 12)
		stats.AverageSalary = round2(totalAnnual / float64(stats.TotalEmployees))
	}

	sorted := make([]models.Payslip, len(payslips))
	copy(sorted, payslips)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	for i, ps := range sorted {
		if i >= 5 {
			break
		}
		stats.RecentPayslips = append(stats.RecentPayslips, models.RecentPayslip{
			ID:           ps.ID,
			EmployeeName: ps.EmployeeName,
			Period:       fmt.Sprintf("%d/%d", ps.PeriodMonth, ps.PeriodYear),
			NetSalary:    ps.NetSalary,
		})
	}
	return stats
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
