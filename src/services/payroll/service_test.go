package payroll

import (
	"testing"
	"time"

	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayslip(t *testing.T) {
	emp := models.Employee{ID: "e1", Name: "Aisha Khan", AnnualSalary: 30000}
	input := models.PayslipCreate{
		EmployeeID:   "e1",
		PeriodMonth:  6,
		PeriodYear:   2025,
		TaxDeduction: 291.0,
		NIDeduction:  149.6,
		OtherDeductions: []models.Deduction{
			{Name: "Uniform", Amount: 15},
		},
		Bonuses: 100,
	}

	ps := BuildPayslip(emp, input)
	assert.Equal(t, "e1", ps.EmployeeID)
	assert.Equal(t, "Aisha Khan", ps.EmployeeName)
	assert.Equal(t, 2500.0, ps.GrossSalary)
	// 2500 + 100 - (291 + 149.60 + 15)
	assert.Equal(t, 2144.4, ps.NetSalary)
	assert.NotEmpty(t, ps.ID)
}

func TestBuildPayslipNoDeductions(t *testing.T) {
	emp := models.Employee{ID: "e1", Name: "Tom", AnnualSalary: 26000}
	ps := BuildPayslip(emp, models.PayslipCreate{EmployeeID: "e1", PeriodMonth: 1, PeriodYear: 2025})
	assert.Equal(t, 2166.67, ps.GrossSalary)
	assert.Equal(t, 2166.67, ps.NetSalary)
}

func TestComputeDashboard(t *testing.T) {
	employees := []models.Employee{
		{Department: "Stewarding", AnnualSalary: 24000},
		{Department: "Stewarding", AnnualSalary: 26000},
		{Department: "Door Supervision", AnnualSalary: 30000},
	}
	now := time.Now().UTC()
	payslips := []models.Payslip{
		{ID: "p1", EmployeeName: "A", PeriodMonth: 4, PeriodYear: 2025, NetSalary: 1800, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "p2", EmployeeName: "B", PeriodMonth: 5, PeriodYear: 2025, NetSalary: 1900, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p3", EmployeeName: "C", PeriodMonth: 6, PeriodYear: 2025, NetSalary: 2000, CreatedAt: now.Add(-1 * time.Hour)},
	}

	stats := ComputeDashboard(employees, payslips)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, round2(80000.0/12), stats.TotalMonthlyPayroll)
	assert.Equal(t, 26666.67, stats.AverageSalary)

	assert.Len(t, stats.Departments, 2)
	byName := map[string]models.DepartmentStats{}
	for _, d := range stats.Departments {
		byName[d.Name] = d
	}
	assert.Equal(t, 2, byName["Stewarding"].Count)
	assert.Equal(t, 50000.0, byName["Stewarding"].TotalSalary)
	assert.Equal(t, 1, byName["Door Supervision"].Count)

	// newest first
	assert.Len(t, stats.RecentPayslips, 3)
	assert.Equal(t, "p3", stats.RecentPayslips[0].ID)
	assert.Equal(t, "6/2025", stats.RecentPayslips[0].Period)
}

func TestComputeDashboardEmpty(t *testing.T) {
	stats := ComputeDashboard(nil, nil)
	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0.0, stats.TotalMonthlyPayroll)
	assert.Equal(t, 0.0, stats.AverageSalary)
	assert.Empty(t, stats.Departments)
	assert.Empty(t, stats.RecentPayslips)
}

func TestComputeDashboardRecentCappedAtFive(t *testing.T) {
	now := time.Now().UTC()
	payslips := make([]models.Payslip, 8)
	for i := range payslips {
		payslips[i] = models.Payslip{ID: string(rune('a' + i)), CreatedAt: now.Add(time.Duration(i) * time.Minute)}
	}
	stats := ComputeDashboard(nil, payslips)
	assert.Len(t, stats.RecentPayslips, 5)
	assert.Equal(t, "h", stats.RecentPayslips[0].ID)
}
