package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

// ScoringRepository keeps one submission per (participant, jury).
type ScoringRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.Submission
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{items: make(map[string]scoring.Submission)}
}

func (r *ScoringRepository) Upsert(_ context.Context, submission scoring.Submission) (scoring.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := submissionKey(submission.ParticipantID, submission.JuryID)
	if existing, ok := r.items[key]; ok {
		submission.ID = existing.ID
		submission.SubmittedAt = existing.SubmittedAt
	}
	r.items[key] = submission
	return submission, nil
}

func (r *ScoringRepository) GetByParticipantAndJury(_ context.Context, participantID, juryID string) (scoring.Submission, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[submissionKey(participantID, juryID)]
	if !ok {
		return scoring.Submission{}, false, nil
	}
	return item, true, nil
}

func (r *ScoringRepository) ListByEvent(_ context.Context, eventID string) ([]scoring.Submission, error) {
	return r.list(func(s scoring.Submission) bool { return s.EventID == eventID }), nil
}

func (r *ScoringRepository) ListByJuryAndEvent(_ context.Context, juryID, eventID string) ([]scoring.Submission, error) {
	return r.list(func(s scoring.Submission) bool { return s.EventID == eventID && s.JuryID == juryID }), nil
}

func (r *ScoringRepository) list(keep func(scoring.Submission) bool) []scoring.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.Submission, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return submissionKey(out[i].ParticipantID, out[i].JuryID) < submissionKey(out[j].ParticipantID, out[j].JuryID)
	})
	return out
}

func submissionKey(participantID, juryID string) string {
	return participantID + "::" + juryID
}
