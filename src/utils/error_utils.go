package utils

import (
	"log"

	"Backend-GuardPoint/src/apperr"
	"Backend-GuardPoint/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes a plain error body with the given status.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps a service error to its HTTP status. Business error
// kinds keep their message; anything else is an internal failure the caller
// may retry, with the detail logged rather than leaked.
func HandleServiceError(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := statusOf(kind)

	if kind == "" {
		log.Println("❌ internal error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "internal server error",
		})
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Code:    string(kind),
		Message: err.Error(),
	})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidCoordinate, apperr.KindLocationRequired, apperr.KindInvalidInput:
		return fiber.StatusBadRequest
	case apperr.KindMisconfiguredGeofence:
		return fiber.StatusUnprocessableEntity
	case apperr.KindOutOfRange, apperr.KindNotAssigned:
		return fiber.StatusForbidden
	case apperr.KindAlreadyClockedIn, apperr.KindNoOpenSession:
		return fiber.StatusConflict
	case apperr.KindCheckpointNotFound, apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindClockSkew:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
