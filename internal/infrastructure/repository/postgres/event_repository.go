package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	qb "github.com/riskibarqy/event-scoring/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event by id query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event by id: %w", err)
	}

	return eventFromRow(row), true, nil
}

func (r *EventRepository) GetByIDs(ctx context.Context, eventIDs []string) ([]event.Event, error) {
	if len(eventIDs) == 0 {
		return []event.Event{}, nil
	}

	query, args, err := qb.Select("*").From("events").
		Where(
			qb.In("public_id", toAnySlice(eventIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get events by ids query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get events by ids: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) ListPublishedStartingBetween(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Eq("is_published", true),
			qb.Gte("start_date", from),
			qb.Lte("start_date", to),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by start window query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events by start window: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) UpdateScoreLimits(ctx context.Context, eventID string, limits scoring.Limits) (event.Event, bool, error) {
	query, args, err := qb.Update("events").
		Set("max_innovation", limits.Innovation).
		Set("max_technical", limits.Technical).
		Set("max_presentation", limits.Presentation).
		Set("max_impact", limits.Impact).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build update score limits query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query+" RETURNING *", args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("update score limits: %w", err)
	}

	return eventFromRow(row), true, nil
}

// eventFromRow fills unset maxima (legacy rows) with the default of 10.
func eventFromRow(row eventTableModel) event.Event {
	limits := scoring.Limits{
		Innovation:   row.MaxInnovation,
		Technical:    row.MaxTechnical,
		Presentation: row.MaxPresentation,
		Impact:       row.MaxImpact,
	}
	defaults := scoring.DefaultLimits()
	if limits.Innovation <= 0 {
		limits.Innovation = defaults.Innovation
	}
	if limits.Technical <= 0 {
		limits.Technical = defaults.Technical
	}
	if limits.Presentation <= 0 {
		limits.Presentation = defaults.Presentation
	}
	if limits.Impact <= 0 {
		limits.Impact = defaults.Impact
	}

	ev := event.Event{
		ID:          row.PublicID,
		Title:       row.Title,
		EventType:   row.EventType,
		Location:    row.Location.String,
		IsPublished: row.IsPublished,
		ScoreLimits: limits,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.StartDate.Valid {
		ev.StartDate = row.StartDate.Time
	}
	return ev
}
