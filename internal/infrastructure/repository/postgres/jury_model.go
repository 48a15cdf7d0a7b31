package postgres

import (
	"database/sql"
	"time"
)

type juryAssignmentTableModel struct {
	ID         int64          `db:"id"`
	PublicID   string         `db:"public_id"`
	JuryID     string         `db:"jury_user_id"`
	EventID    string         `db:"event_public_id"`
	AssignedBy sql.NullString `db:"assigned_by"`
	AssignedAt time.Time      `db:"assigned_at"`
}

type juryAssignmentInsertModel struct {
	PublicID   string         `db:"public_id"`
	JuryID     string         `db:"jury_user_id"`
	EventID    string         `db:"event_public_id"`
	AssignedBy sql.NullString `db:"assigned_by"`
	AssignedAt time.Time      `db:"assigned_at"`
}
