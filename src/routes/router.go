package routes

import (
	"Backend-GuardPoint/src/controllers"
	"Backend-GuardPoint/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controllers bundles everything InitRoutes wires onto the app.
type Controllers struct {
	JWTSecret  string
	Auth       *controllers.AuthController
	Attendance *controllers.AttendanceController
	Checkpoint *controllers.CheckpointController
	Patrol     *controllers.PatrolController
	Defect     *controllers.DefectController
	Directory  *controllers.DirectoryController
	Contract   *controllers.ContractController
	Payroll    *controllers.PayrollController
}

// InitRoutes mounts every module under /api.
func InitRoutes(app *fiber.App, ctl Controllers) {
	api := app.Group("/api")

	authRoutes(api, ctl)

	protected := api.Group("", middleware.AuthJWT(ctl.JWTSecret))
	attendanceRoutes(protected, ctl)
	checkpointRoutes(protected, ctl)
	patrolRoutes(protected, ctl)
	defectRoutes(protected, ctl)
	directoryRoutes(protected, ctl)
	contractRoutes(protected, ctl)
	payrollRoutes(protected, ctl)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
