package models

import "time"

// DefaultTaxCode is the standard UK personal-allowance tax code applied when a
// new employee has none supplied. Passed through to payroll, never computed on.
const DefaultTaxCode = "1257L"

// Employee is a member of staff (steward, door supervisor, event officer).
type Employee struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Department   string    `bson:"department" json:"department"`
	Position     string    `bson:"position" json:"position"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	AnnualSalary float64   `bson:"annualSalary" json:"annualSalary"` // GBP
	ContractID   *string   `bson:"contractId,omitempty" json:"contractId,omitempty"`
	BankAccount  string    `bson:"bankAccount,omitempty" json:"bankAccount,omitempty"`
	SortCode     string    `bson:"sortCode,omitempty" json:"sortCode,omitempty"`
	TaxCode      string    `bson:"taxCode" json:"taxCode"`
	NINumber     string    `bson:"niNumber,omitempty" json:"niNumber,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// EmployeeCreate is the body of POST /employees.
type EmployeeCreate struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Department   string  `json:"department" validate:"required"`
	Position     string  `json:"position" validate:"required"`
	Phone        string  `json:"phone"`
	AnnualSalary float64 `json:"annualSalary" validate:"gte=0"`
	ContractID   *string `json:"contractId"`
	BankAccount  string  `json:"bankAccount"`
	SortCode     string  `json:"sortCode"`
	TaxCode      string  `json:"taxCode"`
	NINumber     string  `json:"niNumber"`
}

// EmployeeUpdate is a partial update; nil fields are left untouched.
type EmployeeUpdate struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Department   *string  `json:"department"`
	Position     *string  `json:"position"`
	Phone        *string  `json:"phone"`
	AnnualSalary *float64 `json:"annualSalary" validate:"omitempty,gte=0"`
	ContractID   *string  `json:"contractId"`
	BankAccount  *string  `json:"bankAccount"`
	SortCode     *string  `json:"sortCode"`
	TaxCode      *string  `json:"taxCode"`
	NINumber     *string  `json:"niNumber"`
}
