package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	defaultAttemptLimit = 20
	maxRawAnswerLength  = 256
)

const (
	queryInsertAttempt = `INSERT INTO MISSION_ATTEMPTS (ID, EXPEDITION_ID, MISSION_ID, RAW_ANSWER, PARSED_ANSWER, IS_CORRECT, TOLERANCE_RATIO, ATTEMPTED_AT)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	queryListAttempts = `SELECT ID, EXPEDITION_ID, MISSION_ID, RAW_ANSWER, PARSED_ANSWER, IS_CORRECT, TOLERANCE_RATIO, ATTEMPTED_AT
	FROM MISSION_ATTEMPTS
	WHERE EXPEDITION_ID = :1
	ORDER BY ATTEMPTED_AT DESC
	FETCH FIRST :2 ROWS ONLY`

	queryAttemptStats = `SELECT COUNT(*) AS ATTEMPTS, NVL(SUM(IS_CORRECT), 0) AS CORRECT
	FROM MISSION_ATTEMPTS
	WHERE EXPEDITION_ID = :1`
)

// sqlxMissionAttemptRepository implements domain.MissionAttemptRepository using sqlx.
type sqlxMissionAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXMissionAttemptRepository creates a repository backed by an Oracle connection.
func NewSQLXMissionAttemptRepository(db *sqlx.DB) domain.MissionAttemptRepository {
	return &sqlxMissionAttemptRepository{db: db}
}

func toDomainMissionAttempt(m *models.MissionAttempt) *domain.MissionAttempt {
	if m == nil {
		return nil
	}
	var parsed *float64
	if m.ParsedAnswer.Valid {
		v := m.ParsedAnswer.Float64
		parsed = &v
	}
	return &domain.MissionAttempt{
		ID:             m.ID,
		ExpeditionID:   m.ExpeditionID,
		MissionID:      m.MissionID,
		RawAnswer:      m.RawAnswer,
		ParsedAnswer:   parsed,
		IsCorrect:      m.IsCorrect,
		ToleranceRatio: m.ToleranceRatio,
		AttemptedAt:    m.AttemptedAt,
	}
}

func fromDomainMissionAttempt(a *domain.MissionAttempt) *models.MissionAttempt {
	if a == nil {
		return nil
	}
	var parsed sql.NullFloat64
	// BINARY_DOUBLE accepts NaN, but an unparsable answer is stored as NULL.
	if a.ParsedAnswer != nil && !math.IsNaN(*a.ParsedAnswer) && !math.IsInf(*a.ParsedAnswer, 0) {
		parsed = sql.NullFloat64{Float64: *a.ParsedAnswer, Valid: true}
	}
	raw := a.RawAnswer
	if r := []rune(raw); len(r) > maxRawAnswerLength {
		raw = string(r[:maxRawAnswerLength])
	}
	return &models.MissionAttempt{
		ID:             a.ID,
		ExpeditionID:   a.ExpeditionID,
		MissionID:      a.MissionID,
		RawAnswer:      raw,
		ParsedAnswer:   parsed,
		IsCorrect:      a.IsCorrect,
		ToleranceRatio: a.ToleranceRatio,
		AttemptedAt:    a.AttemptedAt,
	}
}

// CreateAttempt inserts a new mission attempt.
func (r *sqlxMissionAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.MissionAttempt) error {
	m := fromDomainMissionAttempt(attempt)
	if m == nil {
		return fmt.Errorf("mission attempt is nil")
	}
	if m.AttemptedAt.IsZero() {
		m.AttemptedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, queryInsertAttempt,
		m.ID,
		m.ExpeditionID,
		m.MissionID,
		m.RawAnswer,
		m.ParsedAnswer,
		m.IsCorrect,
		m.ToleranceRatio,
		m.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mission attempt: %w", err)
	}
	return nil
}

// ListAttempts returns the newest attempts of an expedition first.
func (r *sqlxMissionAttemptRepository) ListAttempts(ctx context.Context, expeditionID string, limit int) ([]*domain.MissionAttempt, error) {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}

	var rows []models.MissionAttempt
	if err := r.db.SelectContext(ctx, &rows, queryListAttempts, expeditionID, limit); err != nil {
		return nil, fmt.Errorf("failed to list mission attempts for expedition %s: %w", expeditionID, err)
	}

	attempts := make([]*domain.MissionAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainMissionAttempt(&rows[i]))
	}
	return attempts, nil
}

// GetStats counts all and correct attempts of an expedition.
func (r *sqlxMissionAttemptRepository) GetStats(ctx context.Context, expeditionID string) (*domain.AttemptStats, error) {
	var stats models.AttemptStats
	if err := r.db.GetContext(ctx, &stats, queryAttemptStats, expeditionID); err != nil {
		return nil, fmt.Errorf("failed to get attempt stats for expedition %s: %w", expeditionID, err)
	}
	return &domain.AttemptStats{Attempts: stats.Attempts, Correct: stats.Correct}, nil
}
