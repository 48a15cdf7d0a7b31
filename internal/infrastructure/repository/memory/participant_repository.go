package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/event-scoring/internal/domain/participant"
)

type ParticipantRepository struct {
	mu    sync.RWMutex
	items map[string]participant.Participant
}

func NewParticipantRepository(participants []participant.Participant) *ParticipantRepository {
	items := make(map[string]participant.Participant, len(participants))
	for _, p := range participants {
		items[p.ID] = p
	}
	return &ParticipantRepository{items: items}
}

func (r *ParticipantRepository) GetByID(_ context.Context, participantID string) (participant.Participant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[participantID]
	if !ok {
		return participant.Participant{}, false, nil
	}
	return p, true, nil
}

func (r *ParticipantRepository) GetByIDs(_ context.Context, participantIDs []string) ([]participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participant.Participant, 0, len(participantIDs))
	seen := make(map[string]struct{}, len(participantIDs))
	for _, id := range participantIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ParticipantRepository) ListByEvent(_ context.Context, eventID string) ([]participant.Participant, error) {
	return r.list(eventID, func(participant.Participant) bool { return true }), nil
}

func (r *ParticipantRepository) ListApprovedByEvent(_ context.Context, eventID string) ([]participant.Participant, error) {
	return r.list(eventID, participant.Participant.IsApproved), nil
}

func (r *ParticipantRepository) list(eventID string, keep func(participant.Participant) bool) []participant.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participant.Participant, 0)
	for _, p := range r.items {
		if p.EventID == eventID && keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
