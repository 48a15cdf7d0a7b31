package postgres

import (
	"database/sql"
	"time"
)

type resultTableModel struct {
	ID            int64          `db:"id"`
	EventID       string         `db:"event_public_id"`
	ParticipantID string         `db:"participant_public_id"`
	FinalScore    float64        `db:"final_score"`
	Rank          int            `db:"rank"`
	Prize         sql.NullString `db:"prize"`
	IsPublished   bool           `db:"is_published"`
	PublishedBy   sql.NullString `db:"published_by"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type resultInsertModel struct {
	EventID       string         `db:"event_public_id"`
	ParticipantID string         `db:"participant_public_id"`
	FinalScore    float64        `db:"final_score"`
	Rank          int            `db:"rank"`
	Prize         sql.NullString `db:"prize"`
	IsPublished   bool           `db:"is_published"`
	PublishedBy   sql.NullString `db:"published_by"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
