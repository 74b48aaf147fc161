package handler

import (
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TimelineHandler serves the Arctic timeline
type TimelineHandler struct {
	service service.TimelineService
}

func NewTimelineHandler(service service.TimelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

// GetTimeline godoc
// @Summary Timeline overview
// @Description Returns the available years and data layers
// @Tags timeline
// @Produce json
// @Success 200 {object} dto.TimelineResponse
// @Router /timeline [get]
func (h *TimelineHandler) GetTimeline(c *fiber.Ctx) error {
	return c.JSON(h.service.Overview())
}

// GetSnapshot godoc
// @Summary Timeline snapshot
// @Description Returns the statistics of one year for the active layers (ice by default)
// @Tags timeline
// @Produce json
// @Param year path int true "Year"
// @Param layers query string false "Comma separated layers: ice, temperature, animals, co2"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /timeline/{year} [get]
func (h *TimelineHandler) GetSnapshot(c *fiber.Ctx) error {
	year, ok := c.Locals(middleware.ValidatedYearKey).(int)
	if !ok {
		return domain.NewInvalidInputError("year is required")
	}
	layers, _ := c.Locals(middleware.ValidatedLayersKey).([]string)

	resp, err := h.service.Snapshot(year, layers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
