package contracts

import (
	"testing"

	"Backend-GuardPoint/src/models"

	"github.com/stretchr/testify/assert"
)

func TestUtilization(t *testing.T) {
	contract := models.Contract{ID: "c1", Budget: 200000}
	employees := []models.Employee{
		{AnnualSalary: 28000},
		{AnnualSalary: 32000},
	}

	view := Utilization(contract, employees)
	assert.Equal(t, 2, view.EmployeeCount)
	assert.Equal(t, 60000.0, view.LaborCost)
	assert.Equal(t, 5000.0, view.MonthlyLaborCost)
	assert.Equal(t, 140000.0, view.BudgetRemaining)
	assert.Equal(t, 30.0, view.BudgetUtilization)
}

func TestUtilizationZeroBudget(t *testing.T) {
	view := Utilization(models.Contract{Budget: 0}, []models.Employee{{AnnualSalary: 28000}})
	assert.Equal(t, 0.0, view.BudgetUtilization)
	assert.Equal(t, -28000.0, view.BudgetRemaining)
}

func TestUtilizationNoEmployees(t *testing.T) {
	view := Utilization(models.Contract{Budget: 50000}, nil)
	assert.Equal(t, 0, view.EmployeeCount)
	assert.Equal(t, 0.0, view.LaborCost)
	assert.Equal(t, 50000.0, view.BudgetRemaining)
	assert.Equal(t, 0.0, view.BudgetUtilization)
}
