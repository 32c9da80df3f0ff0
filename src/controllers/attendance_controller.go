package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/attendance"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	svc *attendance.Service
}

func NewAttendanceController(svc *attendance.Service) *AttendanceController {
	return &AttendanceController{svc: svc}
}

// ClockIn - POST /staff/:employeeId/clock-in
func (ctl *AttendanceController) ClockIn(c *fiber.Ctx) error {
	var body models.ClockInRequest
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	session, err := ctl.svc.ClockIn(c.Context(), c.Params("employeeId"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// ClockOut - POST /staff/:employeeId/clock-out
func (ctl *AttendanceController) ClockOut(c *fiber.Ctx) error {
	var body models.ClockOutRequest
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	session, err := ctl.svc.ClockOut(c.Context(), c.Params("employeeId"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"hoursWorked": session.HoursWorked,
		"session":     session,
	})
}

// Status - GET /staff/:employeeId/status
func (ctl *AttendanceController) Status(c *fiber.Ctx) error {
	status, err := ctl.svc.Status(c.Context(), c.Params("employeeId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(status)
}

// ListCompleted - GET /attendance?employeeId=&from=&to=
// Read-only feed for payroll and invoicing.
func (ctl *AttendanceController) ListCompleted(c *fiber.Ctx) error {
	sessions, err := ctl.svc.ListCompleted(c.Context(),
		c.Query("employeeId"), c.Query("from"), c.Query("to"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(sessions)
}
