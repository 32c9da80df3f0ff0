package models

import "time"

// Contract statuses.
const (
	ContractActive    = "active"
	ContractCompleted = "completed"
	ContractOnHold    = "on_hold"
)

// Contract is a client engagement with a labor budget in GBP.
type Contract struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Client      string    `bson:"client" json:"client"`
	Budget      float64   `bson:"budget" json:"budget"`
	StartDate   string    `bson:"startDate" json:"startDate"`
	EndDate     *string   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ContractView is a contract enriched with labor-cost figures derived from the
// employees currently assigned to it.
type ContractView struct {
	Contract          `bson:",inline"`
	EmployeeCount     int        `json:"employeeCount"`
	LaborCost         float64    `json:"laborCost"`
	MonthlyLaborCost  float64    `json:"monthlyLaborCost"`
	BudgetRemaining   float64    `json:"budgetRemaining"`
	BudgetUtilization float64    `json:"budgetUtilization"` // percent of budget consumed by labor
	Employees         []Employee `json:"employees,omitempty"`
}

// ContractCreate is the body of POST /contracts.
type ContractCreate struct {
	Name        string  `json:"name" validate:"required"`
	Client      string  `json:"client" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}

// ContractUpdate is a partial update.
type ContractUpdate struct {
	Name        *string  `json:"name"`
	Client      *string  `json:"client"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}
