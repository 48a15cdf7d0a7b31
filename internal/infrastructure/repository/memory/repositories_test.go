package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

func TestScoringRepository_UpsertReplacesAndKeepsFirstSubmission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoringRepository()
	first := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.Upsert(ctx, scoring.Submission{
		ID: "s-1", ParticipantID: "P1", JuryID: "J1", EventID: "E1",
		Scores: scoring.Scores{Innovation: 1, Technical: 1, Presentation: 1, Impact: 1}, SubmittedAt: first, UpdatedAt: first,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	later := first.Add(time.Hour)
	stored, err := repo.Upsert(ctx, scoring.Submission{
		ID: "s-2", ParticipantID: "P1", JuryID: "J1", EventID: "E1",
		Scores: scoring.Scores{Innovation: 9, Technical: 9, Presentation: 9, Impact: 9}, SubmittedAt: later, UpdatedAt: later,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if stored.ID != "s-1" || !stored.SubmittedAt.Equal(first) || !stored.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected stored row: %+v", stored)
	}

	items, _ := repo.ListByEvent(ctx, "E1")
	if len(items) != 1 || items[0].TotalScore() != 36 {
		t.Fatalf("expected one replaced row, got %+v", items)
	}
}

func TestScoringRepository_ConcurrentUpsertsKeepOneRowPerPair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoringRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_, _ = repo.Upsert(ctx, scoring.Submission{ParticipantID: "P1", JuryID: "J1", EventID: "E1", Scores: scoring.Scores{Innovation: v % 10}})
		}(i)
	}
	wg.Wait()

	items, _ := repo.ListByJuryAndEvent(ctx, "J1", "E1")
	if len(items) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(items))
	}
}

func TestResultRepository_ListPublishedFiltersAndOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewResultRepository()
	for _, item := range []result.Result{
		{EventID: "E1", ParticipantID: "P2", Rank: 2, IsPublished: true},
		{EventID: "E1", ParticipantID: "P1", Rank: 1, IsPublished: true},
		{EventID: "E1", ParticipantID: "P3", Rank: 3, IsPublished: false},
		{EventID: "E2", ParticipantID: "P9", Rank: 1, IsPublished: true},
	} {
		if _, err := repo.Upsert(ctx, item); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	got, _ := repo.ListPublished(ctx, "E1")
	if len(got) != 2 || got[0].ParticipantID != "P1" || got[1].ParticipantID != "P2" {
		t.Fatalf("unexpected published rows: %+v", got)
	}

	all, _ := repo.ListPublished(ctx, "")
	if len(all) != 3 {
		t.Fatalf("unexpected published count across events: %d", len(all))
	}
}

func TestJuryRepository_CreateRejectsDuplicatePair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewJuryRepository(SeedAssignments())

	_, err := repo.Create(ctx, jury.Assignment{ID: "asg-x", JuryID: JuryIDAda, EventID: EventIDHackathon})
	if !errors.Is(err, jury.ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}

	assigned, err := repo.IsAssigned(ctx, JuryIDGrace, EventIDPitchDay)
	if err != nil || assigned {
		t.Fatalf("grace must not be assigned to pitch day: assigned=%v err=%v", assigned, err)
	}

	deleted, err := repo.Delete(ctx, "asg-1")
	if err != nil || !deleted {
		t.Fatalf("delete assignment: deleted=%v err=%v", deleted, err)
	}
	if assigned, _ := repo.IsAssigned(ctx, JuryIDAda, EventIDHackathon); assigned {
		t.Fatalf("assignment should be gone after delete")
	}
}

func TestEventRepository_ListPublishedStartingBetweenIsInclusive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	events := SeedEvents()
	repo := NewEventRepository(events)

	from := events[0].StartDate
	to := from.Add(24 * time.Hour)
	got, err := repo.ListPublishedStartingBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 1 || got[0].ID != EventIDHackathon {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestParticipantRepository_ListByEventOrdersByRegistration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewParticipantRepository(SeedParticipants())

	all, _ := repo.ListByEvent(ctx, EventIDHackathon)
	if len(all) != 3 || all[0].ID != "reg-neural-ninjas" || all[2].ID != "reg-solo-sari" {
		t.Fatalf("unexpected order: %+v", all)
	}

	approved, _ := repo.ListApprovedByEvent(ctx, EventIDHackathon)
	if len(approved) != 2 {
		t.Fatalf("unexpected approved count: %d", len(approved))
	}
}
