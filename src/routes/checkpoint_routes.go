package routes

import "github.com/gofiber/fiber/v2"

func checkpointRoutes(router fiber.Router, ctl Controllers) {
	cp := router.Group("/checkpoints")
	cp.Post("/", ctl.Checkpoint.Create)
	cp.Get("/", ctl.Checkpoint.List)
	cp.Get("/:id", ctl.Checkpoint.Get)
	cp.Put("/:id", ctl.Checkpoint.Update)
	cp.Delete("/:id", ctl.Checkpoint.Deactivate)
	cp.Get("/:id/qr", ctl.Checkpoint.QR)
}
