package routes

import "github.com/gofiber/fiber/v2"

func patrolRoutes(router fiber.Router, ctl Controllers) {
	p := router.Group("/patrols")
	p.Post("/check-in", ctl.Patrol.CheckIn)
	p.Get("/stats", ctl.Patrol.Stats)
	p.Get("/missed-checkpoints", ctl.Patrol.MissedCheckpoints)
	p.Get("/", ctl.Patrol.List)
	p.Post("/:id/photos", ctl.Patrol.AddPhotos)
}
