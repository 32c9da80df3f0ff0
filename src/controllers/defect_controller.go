package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/defects"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type DefectController struct {
	svc *defects.Service
}

func NewDefectController(svc *defects.Service) *DefectController {
	return &DefectController{svc: svc}
}

// Report - POST /defects
func (ctl *DefectController) Report(c *fiber.Ctx) error {
	var body models.DefectCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	defect, err := ctl.svc.Report(c.Context(), callerID(c), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(defect)
}

// List - GET /defects?siteId=&status=
func (ctl *DefectController) List(c *fiber.Ctx) error {
	list, err := ctl.svc.List(c.Context(), c.Query("siteId"), c.Query("status"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// Get - GET /defects/:id
func (ctl *DefectController) Get(c *fiber.Ctx) error {
	defect, err := ctl.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(defect)
}

// Update - PUT /defects/:id
func (ctl *DefectController) Update(c *fiber.Ctx) error {
	var body models.DefectUpdate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	defect, err := ctl.svc.Update(c.Context(), c.Params("id"), callerID(c), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(defect)
}

// Resolve - POST /defects/:id/resolve
func (ctl *DefectController) Resolve(c *fiber.Ctx) error {
	var body struct {
		ResolutionNotes string `json:"resolutionNotes"`
	}
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid request body")
	}

	defect, err := ctl.svc.Resolve(c.Context(), c.Params("id"), callerID(c), body.ResolutionNotes)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(defect)
}

// AddPhotos - POST /defects/:id/photos
func (ctl *DefectController) AddPhotos(c *fiber.Ctx) error {
	var body struct {
		Photos []string `json:"photos" validate:"required,min=1"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	defect, err := ctl.svc.AddPhotos(c.Context(), c.Params("id"), body.Photos)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(defect)
}

// Stats - GET /defects/stats?siteId=
func (ctl *DefectController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.svc.Stats(c.Context(), c.Query("siteId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}
