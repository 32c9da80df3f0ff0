package controllers

import (
	"Backend-GuardPoint/src/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseBody decodes and validates a request body.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.New(apperr.KindInvalidInput, "invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.New(apperr.KindInvalidInput, "%v", err)
	}
	return nil
}

// callerID is the authenticated user id set by the JWT middleware. For staff
// clients the token subject is the employee id.
func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userId").(string); ok {
		return id
	}
	return ""
}
