package routes

import "github.com/gofiber/fiber/v2"

func payrollRoutes(router fiber.Router, ctl Controllers) {
	pay := router.Group("/payslips")
	pay.Post("/", ctl.Payroll.Create)
	pay.Get("/", ctl.Payroll.List)
	pay.Get("/:id", ctl.Payroll.Get)
	pay.Delete("/:id", ctl.Payroll.Delete)

	router.Get("/dashboard", ctl.Payroll.Dashboard)
}
