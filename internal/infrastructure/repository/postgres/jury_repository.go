package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	qb "github.com/riskibarqy/event-scoring/internal/platform/querybuilder"
)

type JuryRepository struct {
	db *sqlx.DB
}

func NewJuryRepository(db *sqlx.DB) *JuryRepository {
	return &JuryRepository{db: db}
}

func (r *JuryRepository) IsAssigned(ctx context.Context, juryID, eventID string) (bool, error) {
	query, args, err := qb.Select("1").From("jury_assignments").
		Where(
			qb.Eq("jury_user_id", juryID),
			qb.Eq("event_public_id", eventID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build is assigned query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check jury assignment: %w", err)
	}
	return true, nil
}

func (r *JuryRepository) Create(ctx context.Context, assignment jury.Assignment) (jury.Assignment, error) {
	query, args, err := qb.InsertModel("jury_assignments", juryAssignmentInsertModel{
		PublicID:   assignment.ID,
		JuryID:     assignment.JuryID,
		EventID:    assignment.EventID,
		AssignedBy: nullString(assignment.AssignedBy),
		AssignedAt: assignment.AssignedAt,
	}, "RETURNING *")
	if err != nil {
		return jury.Assignment{}, fmt.Errorf("build create assignment query: %w", err)
	}

	var row juryAssignmentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return jury.Assignment{}, fmt.Errorf("%w: jury=%s event=%s", jury.ErrDuplicateAssignment, assignment.JuryID, assignment.EventID)
		}
		return jury.Assignment{}, fmt.Errorf("create assignment: %w", err)
	}
	return assignmentFromRow(row), nil
}

func (r *JuryRepository) Delete(ctx context.Context, assignmentID string) (bool, error) {
	query, args, err := qb.DeleteFrom("jury_assignments").
		Where(qb.Eq("public_id", assignmentID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete assignment query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete assignment rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *JuryRepository) List(ctx context.Context, eventID string) ([]jury.Assignment, error) {
	var conditions []qb.Condition
	if eventID != "" {
		conditions = append(conditions, qb.Eq("event_public_id", eventID))
	}
	return r.list(ctx, "list assignments", conditions...)
}

func (r *JuryRepository) ListByJury(ctx context.Context, juryID string) ([]jury.Assignment, error) {
	return r.list(ctx, "list assignments by jury", qb.Eq("jury_user_id", juryID))
}

func (r *JuryRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]jury.Assignment, error) {
	builder := qb.Select("*").From("jury_assignments")
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}
	query, args, err := builder.OrderBy("assigned_at", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []juryAssignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]jury.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentFromRow(row))
	}
	return out, nil
}

func assignmentFromRow(row juryAssignmentTableModel) jury.Assignment {
	return jury.Assignment{
		ID:         row.PublicID,
		JuryID:     row.JuryID,
		EventID:    row.EventID,
		AssignedBy: row.AssignedBy.String,
		AssignedAt: row.AssignedAt,
	}
}
