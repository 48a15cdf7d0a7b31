package postgres

import (
	"database/sql"
	"time"
)

type participantTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	EventID            string         `db:"event_public_id"`
	TeamName           sql.NullString `db:"team_name"`
	TeamLeaderName     string         `db:"team_leader_name"`
	TeamLeaderEmail    string         `db:"team_leader_email"`
	IsTeamRegistration bool           `db:"is_team_registration"`
	Status             string         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}
