package service

import (
	"math"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
)

func toExpeditionResponse(cat *catalog.Catalog, exp *domain.Expedition) *dto.ExpeditionResponse {
	roleName := string(exp.Character.Role)
	if info, ok := cat.Role(exp.Character.Role); ok {
		roleName = info.Name
	}
	completed := make([]string, len(exp.CompletedMissions))
	copy(completed, exp.CompletedMissions)

	return &dto.ExpeditionResponse{
		ID: exp.ID,
		Character: dto.CharacterResponse{
			Name:     exp.Character.Name,
			Role:     string(exp.Character.Role),
			RoleName: roleName,
			Avatar:   exp.Character.Avatar,
		},
		CompletedMissions: completed,
		CreatedAt:         exp.CreatedAt,
	}
}

func toChatMessageResponse(m domain.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func toAttemptResponse(a *domain.MissionAttempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		MissionID:   a.MissionID,
		RawAnswer:   a.RawAnswer,
		Correct:     a.IsCorrect,
		AttemptedAt: a.AttemptedAt,
	}
}

// finiteOrNil maps NaN to nil so the value survives JSON encoding.
func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// missionForExpedition resolves a mission the expedition's role is allowed to see.
// Missions of other roles are reported as not found.
func missionForExpedition(cat *catalog.Catalog, exp *domain.Expedition, missionID string) (domain.Mission, error) {
	m, ok := cat.Mission(missionID)
	if !ok || m.Role != exp.Character.Role {
		return domain.Mission{}, domain.NewMissionNotFoundError(missionID)
	}
	return m, nil
}
