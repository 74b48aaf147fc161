package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpeditionClaims are the JWT claims identifying an expedition.
type ExpeditionClaims struct {
	ExpeditionID string `json:"expedition_id"`
	jwt.RegisteredClaims
}

// RoleResponse represents a selectable role
// @Description Expedition role
type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AvatarsResponse lists the selectable avatars
type AvatarsResponse struct {
	Avatars []string `json:"avatars"`
}

// CreateExpeditionRequest represents the character creation form
// @Description Request body for starting an expedition
type CreateExpeditionRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type CharacterResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	RoleName string `json:"role_name"`
	Avatar   string `json:"avatar"`
}

// ExpeditionResponse represents an expedition in the API response
type ExpeditionResponse struct {
	ID                string            `json:"id"`
	Character         CharacterResponse `json:"character"`
	CompletedMissions []string          `json:"completed_missions"`
	CreatedAt         time.Time         `json:"created_at"`
}

// CreateExpeditionResponse carries the new expedition and its bearer token
type CreateExpeditionResponse struct {
	Expedition ExpeditionResponse `json:"expedition"`
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

type AttemptResponse struct {
	MissionID   string    `json:"mission_id"`
	RawAnswer   string    `json:"raw_answer"`
	Correct     bool      `json:"correct"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// ProgressResponse summarises how far an expedition has got
type ProgressResponse struct {
	ExpeditionID      string            `json:"expedition_id"`
	Role              string            `json:"role"`
	CompletedMissions int               `json:"completed_missions"`
	TotalMissions     int               `json:"total_missions"`
	Attempts          int               `json:"attempts"`
	CorrectAttempts   int               `json:"correct_attempts"`
	RecentAttempts    []AttemptResponse `json:"recent_attempts"`
}
