package handler

import (
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExpeditionHandler handles expedition lifecycle requests
type ExpeditionHandler struct {
	service service.ExpeditionService
}

func NewExpeditionHandler(service service.ExpeditionService) *ExpeditionHandler {
	return &ExpeditionHandler{service: service}
}

// CreateExpedition godoc
// @Summary Start an expedition
// @Description Creates a character and returns the expedition with its bearer token
// @Tags expeditions
// @Accept json
// @Produce json
// @Param request body dto.CreateExpeditionRequest true "Character"
// @Success 201 {object} dto.CreateExpeditionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /expeditions [post]
func (h *ExpeditionHandler) CreateExpedition(c *fiber.Ctx) error {
	var req dto.CreateExpeditionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExpedition godoc
// @Summary Current expedition
// @Tags expeditions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ExpeditionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expeditions/me [get]
func (h *ExpeditionHandler) GetExpedition(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetProgress godoc
// @Summary Expedition progress
// @Description Completed missions and answer statistics
// @Tags expeditions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProgressResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /expeditions/me/progress [get]
func (h *ExpeditionHandler) GetProgress(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.Progress(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
