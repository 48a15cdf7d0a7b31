package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	qb "github.com/riskibarqy/event-scoring/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

// Upsert relies on the (participant_public_id, jury_user_id) unique key; the
// original public_id and submitted_at survive a resubmission.
func (r *ScoringRepository) Upsert(ctx context.Context, submission scoring.Submission) (scoring.Submission, error) {
	insertModel := scoreInsertModel{
		PublicID:          submission.ID,
		EventID:           submission.EventID,
		ParticipantID:     submission.ParticipantID,
		JuryID:            submission.JuryID,
		InnovationScore:   submission.Scores.Innovation,
		TechnicalScore:    submission.Scores.Technical,
		PresentationScore: submission.Scores.Presentation,
		ImpactScore:       submission.Scores.Impact,
		Feedback:          nullString(submission.Feedback),
		SubmittedAt:       submission.SubmittedAt,
		UpdatedAt:         submission.UpdatedAt,
	}

	query, args, err := qb.InsertModel("scores", insertModel, `ON CONFLICT (participant_public_id, jury_user_id)
DO UPDATE SET
    event_public_id = EXCLUDED.event_public_id,
    innovation_score = EXCLUDED.innovation_score,
    technical_score = EXCLUDED.technical_score,
    presentation_score = EXCLUDED.presentation_score,
    impact_score = EXCLUDED.impact_score,
    feedback = EXCLUDED.feedback,
    updated_at = EXCLUDED.updated_at
RETURNING *`)
	if err != nil {
		return scoring.Submission{}, fmt.Errorf("build score upsert query: %w", err)
	}

	var row scoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return scoring.Submission{}, fmt.Errorf("upsert score: %w", err)
	}
	return submissionFromRow(row), nil
}

func (r *ScoringRepository) GetByParticipantAndJury(ctx context.Context, participantID, juryID string) (scoring.Submission, bool, error) {
	query, args, err := qb.Select("*").From("scores").
		Where(
			qb.Eq("participant_public_id", participantID),
			qb.Eq("jury_user_id", juryID),
		).
		ToSQL()
	if err != nil {
		return scoring.Submission{}, false, fmt.Errorf("build get score query: %w", err)
	}

	var row scoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.Submission{}, false, nil
		}
		return scoring.Submission{}, false, fmt.Errorf("get score: %w", err)
	}
	return submissionFromRow(row), true, nil
}

func (r *ScoringRepository) ListByEvent(ctx context.Context, eventID string) ([]scoring.Submission, error) {
	return r.list(ctx, "list scores by event", qb.Eq("event_public_id", eventID))
}

func (r *ScoringRepository) ListByJuryAndEvent(ctx context.Context, juryID, eventID string) ([]scoring.Submission, error) {
	return r.list(ctx, "list scores by jury",
		qb.Eq("event_public_id", eventID),
		qb.Eq("jury_user_id", juryID),
	)
}

func (r *ScoringRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]scoring.Submission, error) {
	query, args, err := qb.Select("*").From("scores").
		Where(conditions...).
		OrderBy("submitted_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]scoring.Submission, 0, len(rows))
	for _, row := range rows {
		out = append(out, submissionFromRow(row))
	}
	return out, nil
}

func submissionFromRow(row scoreTableModel) scoring.Submission {
	return scoring.Submission{
		ID:            row.PublicID,
		ParticipantID: row.ParticipantID,
		JuryID:        row.JuryID,
		EventID:       row.EventID,
		Scores: scoring.Scores{
			Innovation:   row.InnovationScore,
			Technical:    row.TechnicalScore,
			Presentation: row.PresentationScore,
			Impact:       row.ImpactScore,
		},
		Feedback:    row.Feedback.String,
		SubmittedAt: row.SubmittedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
