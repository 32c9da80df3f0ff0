package routes

import "github.com/gofiber/fiber/v2"

func defectRoutes(router fiber.Router, ctl Controllers) {
	d := router.Group("/defects")
	d.Post("/", ctl.Defect.Report)
	d.Get("/stats", ctl.Defect.Stats)
	d.Get("/", ctl.Defect.List)
	d.Get("/:id", ctl.Defect.Get)
	d.Put("/:id", ctl.Defect.Update)
	d.Post("/:id/resolve", ctl.Defect.Resolve)
	d.Post("/:id/photos", ctl.Defect.AddPhotos)
}
