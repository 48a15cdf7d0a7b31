package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	eventmock "github.com/riskibarqy/event-scoring/internal/mocks/domain/event"
	resultmock "github.com/riskibarqy/event-scoring/internal/mocks/domain/result"
	basecache "github.com/riskibarqy/event-scoring/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestEventRepository_GetByIDLoadsOnce(t *testing.T) {
	ctx := context.Background()
	next := eventmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "E1").
		Return(event.Event{ID: "E1", Title: "Hackathon"}, true, nil).
		Once()

	repo := NewEventRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		item, exists, err := repo.GetByID(ctx, "E1")
		if err != nil || !exists || item.Title != "Hackathon" {
			t.Fatalf("call %d: unexpected result item=%+v exists=%v err=%v", i, item, exists, err)
		}
	}
}

func TestEventRepository_CachesMisses(t *testing.T) {
	ctx := context.Background()
	next := eventmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "missing").Return(event.Event{}, false, nil).Once()

	repo := NewEventRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 2; i++ {
		if _, exists, err := repo.GetByID(ctx, "missing"); err != nil || exists {
			t.Fatalf("expected cached miss, exists=%v err=%v", exists, err)
		}
	}
}

func TestEventRepository_UpdateScoreLimitsInvalidates(t *testing.T) {
	ctx := context.Background()
	limits := scoring.Limits{Innovation: 20, Technical: 10, Presentation: 10, Impact: 10}

	next := eventmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "E1").
		Return(event.Event{ID: "E1", ScoreLimits: scoring.DefaultLimits()}, true, nil).
		Once()
	next.On("UpdateScoreLimits", mock.Anything, "E1", limits).
		Return(event.Event{ID: "E1", ScoreLimits: limits}, true, nil).
		Once()
	next.On("GetByID", mock.Anything, "E1").
		Return(event.Event{ID: "E1", ScoreLimits: limits}, true, nil).
		Once()

	repo := NewEventRepository(next, basecache.NewStore(time.Minute))
	if _, _, err := repo.GetByID(ctx, "E1"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if _, _, err := repo.UpdateScoreLimits(ctx, "E1", limits); err != nil {
		t.Fatalf("update limits: %v", err)
	}

	item, _, err := repo.GetByID(ctx, "E1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if item.ScoreLimits.Innovation != 20 {
		t.Fatalf("expected fresh limits after update, got %+v", item.ScoreLimits)
	}
}

func TestEventRepository_LoaderErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")

	next := eventmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "E1").Return(event.Event{}, false, boom).Once()
	next.On("GetByID", mock.Anything, "E1").Return(event.Event{ID: "E1"}, true, nil).Once()

	repo := NewEventRepository(next, basecache.NewStore(time.Minute))
	if _, _, err := repo.GetByID(ctx, "E1"); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, exists, err := repo.GetByID(ctx, "E1"); err != nil || !exists {
		t.Fatalf("expected retry to hit backing repository, exists=%v err=%v", exists, err)
	}
}

func TestResultRepository_UpsertInvalidatesPublishedListings(t *testing.T) {
	ctx := context.Background()
	row := result.Result{EventID: "E1", ParticipantID: "P1", Rank: 1, FinalScore: 30, IsPublished: true}

	next := resultmock.NewRepository(t)
	next.On("ListPublished", mock.Anything, "E1").Return([]result.Result{}, nil).Once()
	next.On("ListPublished", mock.Anything, "").Return([]result.Result{}, nil).Once()
	next.On("Upsert", mock.Anything, row).Return(row, nil).Once()
	next.On("ListPublished", mock.Anything, "E1").Return([]result.Result{row}, nil).Once()
	next.On("ListPublished", mock.Anything, "").Return([]result.Result{row}, nil).Once()

	repo := NewResultRepository(next, basecache.NewStore(time.Minute))
	for _, eventID := range []string{"E1", "", "E1", ""} {
		if _, err := repo.ListPublished(ctx, eventID); err != nil {
			t.Fatalf("warm %q: %v", eventID, err)
		}
	}

	if _, err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	for _, eventID := range []string{"E1", ""} {
		items, err := repo.ListPublished(ctx, eventID)
		if err != nil {
			t.Fatalf("reload %q: %v", eventID, err)
		}
		if len(items) != 1 || items[0].ParticipantID != "P1" {
			t.Fatalf("reload %q: expected fresh rows, got %+v", eventID, items)
		}
	}
}

func TestResultRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	next := resultmock.NewRepository(t)
	next.On("ListPublished", mock.Anything, "E1").
		Return([]result.Result{{EventID: "E1", ParticipantID: "P1", Rank: 1}}, nil).
		Once()

	repo := NewResultRepository(next, basecache.NewStore(time.Minute))
	first, _ := repo.ListPublished(ctx, "E1")
	first[0].Rank = 99

	second, _ := repo.ListPublished(ctx, "E1")
	if second[0].Rank != 1 {
		t.Fatalf("cached slice was mutated through a returned copy")
	}
}

func TestResultRepository_UpsertDuringLoadIsNotHiddenByStaleEntry(t *testing.T) {
	ctx := context.Background()
	row := result.Result{EventID: "E1", ParticipantID: "P1", Rank: 1, FinalScore: 30, Prize: "Winner", IsPublished: true}
	loading := make(chan struct{})
	release := make(chan struct{})

	next := resultmock.NewRepository(t)
	next.On("ListPublished", mock.Anything, "E1").
		Run(func(mock.Arguments) {
			close(loading)
			<-release
		}).
		Return([]result.Result{}, nil).
		Once()
	next.On("Upsert", mock.Anything, row).Return(row, nil).Once()
	next.On("ListPublished", mock.Anything, "E1").Return([]result.Result{row}, nil).Once()

	repo := NewResultRepository(next, basecache.NewStore(time.Minute))

	done := make(chan error, 1)
	go func() {
		_, err := repo.ListPublished(ctx, "E1")
		done <- err
	}()

	<-loading
	if _, err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight listing: %v", err)
	}

	items, err := repo.ListPublished(ctx, "E1")
	if err != nil {
		t.Fatalf("listing after publish: %v", err)
	}
	if len(items) != 1 || items[0].ParticipantID != "P1" {
		t.Fatalf("published row must be visible once the upsert returned, got %+v", items)
	}
}

func TestEventRepository_UpdateScoreLimitsDuringLoadIsNotOverwritten(t *testing.T) {
	ctx := context.Background()
	limits := scoring.Limits{Innovation: 20, Technical: 10, Presentation: 10, Impact: 10}
	loading := make(chan struct{})
	release := make(chan struct{})

	next := eventmock.NewRepository(t)
	next.On("GetByID", mock.Anything, "E1").
		Run(func(mock.Arguments) {
			close(loading)
			<-release
		}).
		Return(event.Event{ID: "E1", ScoreLimits: scoring.DefaultLimits()}, true, nil).
		Once()
	next.On("UpdateScoreLimits", mock.Anything, "E1", limits).
		Return(event.Event{ID: "E1", ScoreLimits: limits}, true, nil).
		Once()
	next.On("GetByID", mock.Anything, "E1").
		Return(event.Event{ID: "E1", ScoreLimits: limits}, true, nil).
		Once()

	repo := NewEventRepository(next, basecache.NewStore(time.Minute))

	done := make(chan error, 1)
	go func() {
		_, _, err := repo.GetByID(ctx, "E1")
		done <- err
	}()

	<-loading
	if _, _, err := repo.UpdateScoreLimits(ctx, "E1", limits); err != nil {
		t.Fatalf("update limits: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight lookup: %v", err)
	}

	item, _, err := repo.GetByID(ctx, "E1")
	if err != nil {
		t.Fatalf("lookup after update: %v", err)
	}
	if item.ScoreLimits.Innovation != 20 {
		t.Fatalf("expected limits from after the update, got %+v", item.ScoreLimits)
	}
}
