package models

import (
	"database/sql"
	"time"
)

// MissionAttempt is the database row of MISSION_ATTEMPTS.
type MissionAttempt struct {
	ID             string          `db:"ID"`            // ULID
	ExpeditionID   string          `db:"EXPEDITION_ID"` // expedition ULID, no FK: expeditions live in Redis
	MissionID      string          `db:"MISSION_ID"`    // catalog mission id
	RawAnswer      string          `db:"RAW_ANSWER"`    // text as submitted
	ParsedAnswer   sql.NullFloat64 `db:"PARSED_ANSWER"` // NULL when the text was not a number
	IsCorrect      bool            `db:"IS_CORRECT"`
	ToleranceRatio float64         `db:"TOLERANCE_RATIO"`
	AttemptedAt    time.Time       `db:"ATTEMPTED_AT"`
}

func (MissionAttempt) TableName() string {
	return "MISSION_ATTEMPTS"
}

// AttemptStats is the aggregate row returned by the stats query.
type AttemptStats struct {
	Attempts int `db:"ATTEMPTS"`
	Correct  int `db:"CORRECT"`
}
