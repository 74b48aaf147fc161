package handler

import (
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every API handler
type Handlers struct {
	Catalog    *CatalogHandler
	Timeline   *TimelineHandler
	Expedition *ExpeditionHandler
	Mission    *MissionHandler
	Chat       *ChatHandler
}

// RegisterRoutes mounts the API on router. Routes that act on an expedition require a bearer token.
func RegisterRoutes(router fiber.Router, h Handlers, tokens service.TokenService) {
	protected := middleware.Protected(tokens)
	vm := middleware.NewValidationMiddleware()

	catalog := router.Group("/catalog")
	catalog.Get("/roles", h.Catalog.GetRoles)
	catalog.Get("/avatars", h.Catalog.GetAvatars)

	timeline := router.Group("/timeline")
	timeline.Get("/", h.Timeline.GetTimeline)
	timeline.Get("/:year", vm.ValidateTimelineQuery(), h.Timeline.GetSnapshot)

	router.Post("/expeditions", h.Expedition.CreateExpedition)
	me := router.Group("/expeditions/me", protected)
	me.Get("/", h.Expedition.GetExpedition)
	me.Get("/progress", h.Expedition.GetProgress)

	missions := router.Group("/missions", protected)
	missions.Get("/", h.Mission.ListMissions)
	missions.Get("/:id", vm.ValidateMissionID(), h.Mission.GetMission)
	missions.Post("/:id/answer", vm.ValidateMissionID(), h.Mission.CheckAnswer)
	missions.Post("/:id/complete", vm.ValidateMissionID(), h.Mission.CompleteMission)

	router.Get("/chat/quick-questions", h.Chat.QuickQuestions)
	chat := router.Group("/chat", protected)
	chat.Post("/", h.Chat.Ask)
	chat.Get("/history", h.Chat.History)
}
