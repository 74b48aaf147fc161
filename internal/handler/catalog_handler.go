package handler

import (
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the character creation options
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetRoles godoc
// @Summary List roles
// @Description Returns the roles a player can pick for an expedition
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Router /catalog/roles [get]
func (h *CatalogHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(h.service.Roles())
}

// GetAvatars godoc
// @Summary List avatars
// @Description Returns the selectable avatars; the first one is the default
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.AvatarsResponse
// @Router /catalog/avatars [get]
func (h *CatalogHandler) GetAvatars(c *fiber.Ctx) error {
	return c.JSON(h.service.Avatars())
}
