package routes

import "github.com/gofiber/fiber/v2"

func attendanceRoutes(router fiber.Router, ctl Controllers) {
	staff := router.Group("/staff")
	staff.Post("/:employeeId/clock-in", ctl.Attendance.ClockIn)
	staff.Post("/:employeeId/clock-out", ctl.Attendance.ClockOut)
	staff.Get("/:employeeId/status", ctl.Attendance.Status)

	router.Get("/attendance", ctl.Attendance.ListCompleted)
}
