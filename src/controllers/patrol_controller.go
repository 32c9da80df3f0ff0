package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/patrols"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type PatrolController struct {
	svc *patrols.Service
}

func NewPatrolController(svc *patrols.Service) *PatrolController {
	return &PatrolController{svc: svc}
}

// CheckIn - POST /patrols/check-in. The officer's employee id comes from the
// authenticated token, never from the body.
func (ctl *PatrolController) CheckIn(c *fiber.Ctx) error {
	var body models.PatrolCheckInRequest
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	record, err := ctl.svc.CheckIn(c.Context(), callerID(c), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// AddPhotos - POST /patrols/:id/photos
func (ctl *PatrolController) AddPhotos(c *fiber.Ctx) error {
	var body struct {
		Photos []string `json:"photos" validate:"required,min=1"`
	}
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	record, err := ctl.svc.AppendPhotos(c.Context(), c.Params("id"), body.Photos)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(record)
}

// List - GET /patrols?siteId=&page=&limit=
func (ctl *PatrolController) List(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil || params.Page < 1 || params.Limit < 1 {
		params = models.DefaultPagination()
	}

	page, err := ctl.svc.List(c.Context(), c.Query("siteId"), params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(page)
}

// Stats - GET /patrols/stats?siteId=&date=
func (ctl *PatrolController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.svc.Stats(c.Context(), c.Query("siteId"), c.Query("date"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}

// MissedCheckpoints - GET /patrols/missed-checkpoints?siteId=
func (ctl *PatrolController) MissedCheckpoints(c *fiber.Ctx) error {
	missed, err := ctl.svc.MissedCheckpoints(c.Context(), c.Query("siteId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(missed)
}
