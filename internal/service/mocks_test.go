package service

import (
	"context"
	"testing"
	"time"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MockExpeditionStore ---
type MockExpeditionStore struct {
	mock.Mock
}

func (m *MockExpeditionStore) Save(ctx context.Context, exp *domain.Expedition) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *MockExpeditionStore) Load(ctx context.Context, id string) (*domain.Expedition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expedition), args.Error(1)
}

// --- MockMissionAttemptRepository ---
type MockMissionAttemptRepository struct {
	mock.Mock
}

func (m *MockMissionAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.MissionAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockMissionAttemptRepository) ListAttempts(ctx context.Context, expeditionID string, limit int) ([]*domain.MissionAttempt, error) {
	args := m.Called(ctx, expeditionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MissionAttempt), args.Error(1)
}

func (m *MockMissionAttemptRepository) GetStats(ctx context.Context, expeditionID string) (*domain.AttemptStats, error) {
	args := m.Called(ctx, expeditionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttemptStats), args.Error(1)
}

// --- MockTokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(expeditionID string) (string, time.Time, error) {
	args := m.Called(expeditionID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Validate(ctx context.Context, token string) (*dto.ExpeditionClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExpeditionClaims), args.Error(1)
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func newExpedition(id string, role domain.Role, completed ...string) *domain.Expedition {
	return &domain.Expedition{
		ID:                id,
		Character:         domain.Character{Name: "Нансен", Role: role, Avatar: "🧑‍🔬"},
		CompletedMissions: append([]string{}, completed...),
		Messages:          []domain.ChatMessage{{ID: "greet", Sender: domain.SenderAI, Text: "Привет"}},
		CreatedAt:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code)
}
