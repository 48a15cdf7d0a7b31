package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	Title           string         `db:"title"`
	EventType       string         `db:"event_type"`
	Location        sql.NullString `db:"location"`
	StartDate       sql.NullTime   `db:"start_date"`
	IsPublished     bool           `db:"is_published"`
	MaxInnovation   int            `db:"max_innovation"`
	MaxTechnical    int            `db:"max_technical"`
	MaxPresentation int            `db:"max_presentation"`
	MaxImpact       int            `db:"max_impact"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}
