package domain

import (
	"context"
	"time"
)

// Role is the profession a player picks for an expedition.
type Role string

const (
	RoleClimatologist Role = "climatologist"
	RoleBiologist     Role = "biologist"
	RoleEngineer      Role = "engineer"
	RoleJournalist    Role = "journalist"
)

// RoleInfo is the display data of a role.
type RoleInfo struct {
	ID          Role
	Name        string
	Description string
	Icon        string
}

// Character is the player's persona.
type Character struct {
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar"`
}

// MessageSender identifies who wrote a chat message.
type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

// ChatMessage is one line of the assistant transcript.
type ChatMessage struct {
	ID        string        `json:"id"`
	Sender    MessageSender `json:"sender"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
}

// Expedition is one player's session state.
type Expedition struct {
	ID                string        `json:"id"`
	Character         Character     `json:"character"`
	CompletedMissions []string      `json:"completed_missions"`
	Messages          []ChatMessage `json:"messages"`
	CreatedAt         time.Time     `json:"created_at"`
}

// HasCompleted reports whether missionID is already completed.
func (e *Expedition) HasCompleted(missionID string) bool {
	for _, id := range e.CompletedMissions {
		if id == missionID {
			return true
		}
	}
	return false
}

// MarkCompleted appends missionID once; it returns false if it was already there.
func (e *Expedition) MarkCompleted(missionID string) bool {
	if e.HasCompleted(missionID) {
		return false
	}
	e.CompletedMissions = append(e.CompletedMissions, missionID)
	return true
}

// AppendMessages adds msgs to the transcript and keeps only the newest limit
// messages. A non-positive limit keeps everything.
func (e *Expedition) AppendMessages(limit int, msgs ...ChatMessage) {
	e.Messages = append(e.Messages, msgs...)
	if limit > 0 && len(e.Messages) > limit {
		e.Messages = append([]ChatMessage(nil), e.Messages[len(e.Messages)-limit:]...)
	}
}

// MissionAttempt is a persisted quiz submission.
type MissionAttempt struct {
	ID             string
	ExpeditionID   string
	MissionID      string
	RawAnswer      string
	ParsedAnswer   *float64
	IsCorrect      bool
	ToleranceRatio float64
	AttemptedAt    time.Time
}

// AttemptStats summarises the attempts of one expedition.
type AttemptStats struct {
	Attempts int
	Correct  int
}

// ExpeditionStore keeps expedition state between requests.
type ExpeditionStore interface {
	Save(ctx context.Context, expedition *Expedition) error
	Load(ctx context.Context, expeditionID string) (*Expedition, error)
}

// MissionAttemptRepository persists quiz submissions.
type MissionAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *MissionAttempt) error
	ListAttempts(ctx context.Context, expeditionID string, limit int) ([]*MissionAttempt, error)
	GetStats(ctx context.Context, expeditionID string) (*AttemptStats, error)
}
