package postgres

import (
	"database/sql"
	"time"
)

type scoreTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	EventID           string         `db:"event_public_id"`
	ParticipantID     string         `db:"participant_public_id"`
	JuryID            string         `db:"jury_user_id"`
	InnovationScore   int            `db:"innovation_score"`
	TechnicalScore    int            `db:"technical_score"`
	PresentationScore int            `db:"presentation_score"`
	ImpactScore       int            `db:"impact_score"`
	Feedback          sql.NullString `db:"feedback"`
	SubmittedAt       time.Time      `db:"submitted_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type scoreInsertModel struct {
	PublicID          string         `db:"public_id"`
	EventID           string         `db:"event_public_id"`
	ParticipantID     string         `db:"participant_public_id"`
	JuryID            string         `db:"jury_user_id"`
	InnovationScore   int            `db:"innovation_score"`
	TechnicalScore    int            `db:"technical_score"`
	PresentationScore int            `db:"presentation_score"`
	ImpactScore       int            `db:"impact_score"`
	Feedback          sql.NullString `db:"feedback"`
	SubmittedAt       time.Time      `db:"submitted_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}
