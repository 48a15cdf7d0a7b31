package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	qb "github.com/riskibarqy/event-scoring/internal/platform/querybuilder"
)

type ParticipantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) GetByID(ctx context.Context, participantID string) (participant.Participant, bool, error) {
	query, args, err := qb.Select("*").From("registrations").
		Where(
			qb.Eq("public_id", participantID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return participant.Participant{}, false, fmt.Errorf("build get registration query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return participant.Participant{}, false, nil
		}
		return participant.Participant{}, false, fmt.Errorf("get registration: %w", err)
	}

	return participantFromRow(row), true, nil
}

func (r *ParticipantRepository) GetByIDs(ctx context.Context, participantIDs []string) ([]participant.Participant, error) {
	if len(participantIDs) == 0 {
		return []participant.Participant{}, nil
	}
	return r.list(ctx, "get registrations by ids",
		qb.In("public_id", toAnySlice(participantIDs)),
		qb.IsNull("deleted_at"),
	)
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]participant.Participant, error) {
	return r.list(ctx, "list registrations by event",
		qb.Eq("event_public_id", eventID),
		qb.IsNull("deleted_at"),
	)
}

func (r *ParticipantRepository) ListApprovedByEvent(ctx context.Context, eventID string) ([]participant.Participant, error) {
	return r.list(ctx, "list approved registrations by event",
		qb.Eq("event_public_id", eventID),
		qb.Eq("status", string(participant.StatusApproved)),
		qb.IsNull("deleted_at"),
	)
}

func (r *ParticipantRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]participant.Participant, error) {
	query, args, err := qb.Select("*").From("registrations").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]participant.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, participantFromRow(row))
	}
	return out, nil
}

func participantFromRow(row participantTableModel) participant.Participant {
	return participant.Participant{
		ID:                 row.PublicID,
		EventID:            row.EventID,
		TeamName:           row.TeamName.String,
		TeamLeaderName:     row.TeamLeaderName,
		TeamLeaderEmail:    row.TeamLeaderEmail,
		IsTeamRegistration: row.IsTeamRegistration,
		Status:             participant.Status(row.Status),
		CreatedAt:          row.CreatedAt,
	}
}
