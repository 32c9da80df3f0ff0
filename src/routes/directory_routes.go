package routes

import "github.com/gofiber/fiber/v2"

func directoryRoutes(router fiber.Router, ctl Controllers) {
	emp := router.Group("/employees")
	emp.Post("/", ctl.Directory.CreateEmployee)
	emp.Get("/", ctl.Directory.ListEmployees)
	emp.Get("/:id", ctl.Directory.GetEmployee)
	emp.Put("/:id", ctl.Directory.UpdateEmployee)
	emp.Delete("/:id", ctl.Directory.DeleteEmployee)

	jobs := router.Group("/jobs")
	jobs.Post("/", ctl.Directory.CreateJob)
	jobs.Get("/", ctl.Directory.ListJobs)
	jobs.Get("/:id", ctl.Directory.GetJob)
	jobs.Put("/:id", ctl.Directory.UpdateJob)
	jobs.Delete("/:id", ctl.Directory.DeleteJob)
}
