package routes

import "github.com/gofiber/fiber/v2"

func contractRoutes(router fiber.Router, ctl Controllers) {
	con := router.Group("/contracts")
	con.Post("/", ctl.Contract.Create)
	con.Get("/", ctl.Contract.List)
	con.Get("/:id", ctl.Contract.Get)
	con.Put("/:id", ctl.Contract.Update)
	con.Delete("/:id", ctl.Contract.Delete)
}
