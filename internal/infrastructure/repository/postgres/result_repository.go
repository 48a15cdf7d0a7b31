package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	qb "github.com/riskibarqy/event-scoring/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Upsert(ctx context.Context, item result.Result) (result.Result, error) {
	insertModel := resultInsertModel{
		EventID:       item.EventID,
		ParticipantID: item.ParticipantID,
		FinalScore:    item.FinalScore,
		Rank:          item.Rank,
		Prize:         nullString(item.Prize),
		IsPublished:   item.IsPublished,
		PublishedBy:   nullString(item.PublishedBy),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}

	query, args, err := qb.InsertModel("results", insertModel, `ON CONFLICT (event_public_id, participant_public_id)
DO UPDATE SET
    final_score = EXCLUDED.final_score,
    rank = EXCLUDED.rank,
    prize = EXCLUDED.prize,
    is_published = EXCLUDED.is_published,
    published_by = EXCLUDED.published_by,
    updated_at = EXCLUDED.updated_at
RETURNING *`)
	if err != nil {
		return result.Result{}, fmt.Errorf("build result upsert query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return result.Result{}, fmt.Errorf("upsert result: %w", err)
	}
	return resultFromRow(row), nil
}

func (r *ResultRepository) Get(ctx context.Context, eventID, participantID string) (result.Result, bool, error) {
	query, args, err := qb.Select("*").From("results").
		Where(
			qb.Eq("event_public_id", eventID),
			qb.Eq("participant_public_id", participantID),
		).
		ToSQL()
	if err != nil {
		return result.Result{}, false, fmt.Errorf("build get result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, fmt.Errorf("get result: %w", err)
	}
	return resultFromRow(row), true, nil
}

func (r *ResultRepository) ListByEvent(ctx context.Context, eventID string) ([]result.Result, error) {
	return r.list(ctx, "list results by event", qb.Eq("event_public_id", eventID))
}

func (r *ResultRepository) ListPublished(ctx context.Context, eventID string) ([]result.Result, error) {
	conditions := []qb.Condition{qb.Eq("is_published", true)}
	if eventID != "" {
		conditions = append(conditions, qb.Eq("event_public_id", eventID))
	}
	return r.list(ctx, "list published results", conditions...)
}

func (r *ResultRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]result.Result, error) {
	query, args, err := qb.Select("*").From("results").
		Where(conditions...).
		OrderBy("rank ASC", "participant_public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromRow(row))
	}
	return out, nil
}

func resultFromRow(row resultTableModel) result.Result {
	return result.Result{
		EventID:       row.EventID,
		ParticipantID: row.ParticipantID,
		FinalScore:    row.FinalScore,
		Rank:          row.Rank,
		Prize:         row.Prize.String,
		IsPublished:   row.IsPublished,
		PublishedBy:   row.PublishedBy.String,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
