package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/directory"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type DirectoryController struct {
	svc *directory.Service
}

func NewDirectoryController(svc *directory.Service) *DirectoryController {
	return &DirectoryController{svc: svc}
}

// ===== Employees =====

// CreateEmployee - POST /employees
func (ctl *DirectoryController) CreateEmployee(c *fiber.Ctx) error {
	var body models.EmployeeCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	emp, err := ctl.svc.CreateEmployee(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// ListEmployees - GET /employees
func (ctl *DirectoryController) ListEmployees(c *fiber.Ctx) error {
	employees, err := ctl.svc.ListEmployees(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(employees)
}

// GetEmployee - GET /employees/:id
func (ctl *DirectoryController) GetEmployee(c *fiber.Ctx) error {
	emp, err := ctl.svc.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(emp)
}

// UpdateEmployee - PUT /employees/:id
func (ctl *DirectoryController) UpdateEmployee(c *fiber.Ctx) error {
	var body models.EmployeeUpdate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	emp, err := ctl.svc.UpdateEmployee(c.Context(), c.Params("id"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(emp)
}

// DeleteEmployee - DELETE /employees/:id
func (ctl *DirectoryController) DeleteEmployee(c *fiber.Ctx) error {
	if err := ctl.svc.DeleteEmployee(c.Context(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

// ===== Jobs =====

// CreateJob - POST /jobs
func (ctl *DirectoryController) CreateJob(c *fiber.Ctx) error {
	var body models.JobCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	job, err := ctl.svc.CreateJob(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// ListJobs - GET /jobs
func (ctl *DirectoryController) ListJobs(c *fiber.Ctx) error {
	jobs, err := ctl.svc.ListJobs(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(jobs)
}

// GetJob - GET /jobs/:id
func (ctl *DirectoryController) GetJob(c *fiber.Ctx) error {
	job, err := ctl.svc.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(job)
}

// UpdateJob - PUT /jobs/:id
func (ctl *DirectoryController) UpdateJob(c *fiber.Ctx) error {
	var body models.JobUpdate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	job, err := ctl.svc.UpdateJob(c.Context(), c.Params("id"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(job)
}

// DeleteJob - DELETE /jobs/:id
func (ctl *DirectoryController) DeleteJob(c *fiber.Ctx) error {
	if err := ctl.svc.DeleteJob(c.Context(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
