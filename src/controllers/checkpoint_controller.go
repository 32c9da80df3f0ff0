package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/checkpoints"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckpointController struct {
	svc *checkpoints.Service
}

func NewCheckpointController(svc *checkpoints.Service) *CheckpointController {
	return &CheckpointController{svc: svc}
}

// Create - POST /checkpoints
func (ctl *CheckpointController) Create(c *fiber.Ctx) error {
	var body models.CheckpointCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	cp, err := ctl.svc.Create(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cp)
}

// List - GET /checkpoints?siteId=
func (ctl *CheckpointController) List(c *fiber.Ctx) error {
	cps, err := ctl.svc.ListActive(c.Context(), c.Query("siteId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(cps)
}

// Get - GET /checkpoints/:id
func (ctl *CheckpointController) Get(c *fiber.Ctx) error {
	cp, err := ctl.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(cp)
}

// Update - PUT /checkpoints/:id
func (ctl *CheckpointController) Update(c *fiber.Ctx) error {
	var body models.CheckpointUpdate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	cp, err := ctl.svc.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(cp)
}

// Deactivate - DELETE /checkpoints/:id (soft delete)
func (ctl *CheckpointController) Deactivate(c *fiber.Ctx) error {
	if err := ctl.svc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checkpoint deactivated"})
}

// QR - GET /checkpoints/:id/qr renders the signage QR code as a PNG file.
func (ctl *CheckpointController) QR(c *fiber.Ctx) error {
	path, err := ctl.svc.RenderQR(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.SendFile(path)
}
