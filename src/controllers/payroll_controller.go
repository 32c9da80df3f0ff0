package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/payroll"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type PayrollController struct {
	svc *payroll.Service
}

func NewPayrollController(svc *payroll.Service) *PayrollController {
	return &PayrollController{svc: svc}
}

// Create - POST /payslips
func (ctl *PayrollController) Create(c *fiber.Ctx) error {
	var body models.PayslipCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	payslip, err := ctl.svc.Create(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payslip)
}

// List - GET /payslips
func (ctl *PayrollController) List(c *fiber.Ctx) error {
	payslips, err := ctl.svc.List(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(payslips)
}

// Get - GET /payslips/:id
func (ctl *PayrollController) Get(c *fiber.Ctx) error {
	payslip, err := ctl.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(payslip)
}

// Delete - DELETE /payslips/:id
func (ctl *PayrollController) Delete(c *fiber.Ctx) error {
	if err := ctl.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payslip deleted successfully"})
}

// Dashboard - GET /dashboard
func (ctl *PayrollController) Dashboard(c *fiber.Ctx) error {
	stats, err := ctl.svc.Dashboard(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}
