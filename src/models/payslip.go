package models

import "time"

// Deduction is a named payslip deduction line.
type Deduction struct {
	Name   string  `bson:"name" json:"name" validate:"required"`
	Amount float64 `bson:"amount" json:"amount" validate:"gte=0"`
}

// Payslip is one monthly payslip. Tax and NI amounts are supplied by the
// caller, never computed here.
type Payslip struct {
	ID              string      `bson:"_id" json:"id"`
	EmployeeID      string      `bson:"employeeId" json:"employeeId"`
	EmployeeName    string      `bson:"employeeName" json:"employeeName"`
	PeriodMonth     int         `bson:"periodMonth" json:"periodMonth"`
	PeriodYear      int         `bson:"periodYear" json:"periodYear"`
	GrossSalary     float64     `bson:"grossSalary" json:"grossSalary"`
	TaxDeduction    float64     `bson:"taxDeduction" json:"taxDeduction"`
	NIDeduction     float64     `bson:"niDeduction" json:"niDeduction"`
	OtherDeductions []Deduction `bson:"otherDeductions,omitempty" json:"otherDeductions,omitempty"`
	Bonuses         float64     `bson:"bonuses" json:"bonuses"`
	NetSalary       float64     `bson:"netSalary" json:"netSalary"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
}

// PayslipCreate is the body of POST /payslips.
type PayslipCreate struct {
	EmployeeID      string      `json:"employeeId" validate:"required"`
	PeriodMonth     int         `json:"periodMonth" validate:"gte=1,lte=12"`
	PeriodYear      int         `json:"periodYear" validate:"gte=2000"`
	TaxDeduction    float64     `json:"taxDeduction" validate:"gte=0"`
	NIDeduction     float64     `json:"niDeduction" validate:"gte=0"`
	OtherDeductions []Deduction `json:"otherDeductions" validate:"dive"`
	Bonuses         float64     `json:"bonuses" validate:"gte=0"`
}

// DepartmentStats is one dashboard department bucket.
type DepartmentStats struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalSalary float64 `json:"totalSalary"`
}

// RecentPayslip is a dashboard payslip summary row.
type RecentPayslip struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employeeName"`
	Period       string  `json:"period"` // M/YYYY
	NetSalary    float64 `json:"netSalary"`
}

// DashboardStats is the response of GET /dashboard.
type DashboardStats struct {
	TotalEmployees      int               `json:"totalEmployees"`
	TotalMonthlyPayroll float64           `json:"totalMonthlyPayroll"`
	AverageSalary       float64           `json:"averageSalary"`
	Departments         []DepartmentStats `json:"departments"`
	RecentPayslips      []RecentPayslip   `json:"recentPayslips"`
}
