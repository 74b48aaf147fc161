package handler

import (
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MissionHandler handles data mission requests
type MissionHandler struct {
	missions    service.MissionService
	expeditions service.ExpeditionService
}

func NewMissionHandler(missions service.MissionService, expeditions service.ExpeditionService) *MissionHandler {
	return &MissionHandler{missions: missions, expeditions: expeditions}
}

// ListMissions godoc
// @Summary Missions of the expedition role
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MissionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /missions [get]
func (h *MissionHandler) ListMissions(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.missions.List(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMission godoc
// @Summary Mission dataset
// @Description Returns the chart data and question of a mission. The reference answer is not included.
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} dto.MissionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /missions/{id} [get]
func (h *MissionHandler) GetMission(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.missions.Get(c.UserContext(), id, missionParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CheckAnswer godoc
// @Summary Check a numeric answer
// @Description Evaluates the answer against the reference value within the mission tolerance
// @Tags missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Param request body dto.CheckAnswerRequest true "Answer"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /missions/{id}/answer [post]
func (h *MissionHandler) CheckAnswer(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	var req dto.CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.missions.Check(c.UserContext(), id, missionParam(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CompleteMission godoc
// @Summary Mark a mission completed
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} dto.CompleteMissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /missions/{id}/complete [post]
func (h *MissionHandler) CompleteMission(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.expeditions.CompleteMission(c.UserContext(), id, missionParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func missionParam(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedMissionIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}
