package routes

import "github.com/gofiber/fiber/v2"

func authRoutes(router fiber.Router, ctl Controllers) {
	auth := router.Group("/auth")
	auth.Post("/login", ctl.Auth.Login)
	auth.Post("/users", ctl.Auth.CreateUser)
}
