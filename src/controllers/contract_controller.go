package controllers

import (
	"Backend-GuardPoint/src/models"
	"Backend-GuardPoint/src/services/contracts"
	"Backend-GuardPoint/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ContractController struct {
	svc *contracts.Service
}

func NewContractController(svc *contracts.Service) *ContractController {
	return &ContractController{svc: svc}
}

// Create - POST /contracts
func (ctl *ContractController) Create(c *fiber.Ctx) error {
	var body models.ContractCreate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	contract, err := ctl.svc.Create(c.Context(), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// List - GET /contracts (with labor-cost figures)
func (ctl *ContractController) List(c *fiber.Ctx) error {
	views, err := ctl.svc.List(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(views)
}

// Get - GET /contracts/:id
func (ctl *ContractController) Get(c *fiber.Ctx) error {
	view, err := ctl.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// Update - PUT /contracts/:id
func (ctl *ContractController) Update(c *fiber.Ctx) error {
	var body models.ContractUpdate
	if err := parseBody(c, &body); err != nil {
		return utils.HandleServiceError(c, err)
	}

	contract, err := ctl.svc.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(contract)
}

// Delete - DELETE /contracts/:id
func (ctl *ContractController) Delete(c *fiber.Ctx) error {
	if err := ctl.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Contract deleted successfully"})
}
