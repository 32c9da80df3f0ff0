package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/auth"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	svc *auth.Service
}

func NewAuthController(svc *auth.Service) *AuthController {
	return &AuthController{svc: svc}
}

// Login - POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body models.LoginRequest
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	user, token, err := ctl.svc.Login(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

// CreateUser - POST /auth/users
func (ctl *AuthController) CreateUser(c *fiber.Ctx) error {
	var body models.UserCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	user, err := ctl.svc.CreateUser(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
