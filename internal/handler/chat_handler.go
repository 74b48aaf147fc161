package handler

import (
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles the assistant chat
type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Ask godoc
// @Summary Ask the assistant
// @Description Stores the question and the keyword-based reply in the transcript
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatReplyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.Ask(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// History godoc
// @Summary Chat transcript
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	id, err := middleware.ExpeditionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.History(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// QuickQuestions godoc
// @Summary Suggested questions
// @Tags chat
// @Produce json
// @Success 200 {object} dto.QuickQuestionsResponse
// @Router /chat/quick-questions [get]
func (h *ChatHandler) QuickQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.QuickQuestions())
}
