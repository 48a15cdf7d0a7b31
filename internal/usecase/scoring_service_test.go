package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/stretchr/testify/require"
)

func TestScoringService_SubmitScore_ReturnsTotal(t *testing.T) {
	t.Parallel()

	s := newScenario()
	got, err := s.scoring.SubmitScore(context.Background(), SubmitScoreInput{
		EventID: "E1", ParticipantID: "P1", JuryID: "J1",
		Scores:   scoring.Scores{Innovation: 8, Technical: 7, Presentation: 9, Impact: 6},
		Feedback: "  solid demo ",
	})
	if err != nil {
		t.Fatalf("submit score: %v", err)
	}
	if got.TotalScore() != 30 {
		t.Fatalf("unexpected total: got=%d want=30", got.TotalScore())
	}
	if got.Feedback != "solid demo" {
		t.Fatalf("unexpected feedback: %q", got.Feedback)
	}
	if got.ID != "sub-1" {
		t.Fatalf("unexpected id: %s", got.ID)
	}
}

func TestScoringService_SubmitScore_ResubmitReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()

	input := SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Innovation: 1, Technical: 1, Presentation: 1, Impact: 1}}
	first, err := s.scoring.SubmitScore(ctx, input)
	require.NoError(t, err)

	s.scoring.now = func() time.Time { return fixtureNow.Add(time.Hour) }
	input.Scores = scoring.Scores{Innovation: 10, Technical: 10, Presentation: 10, Impact: 10}
	second, err := s.scoring.SubmitScore(ctx, input)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.True(t, second.SubmittedAt.Equal(fixtureNow), "first submission time must be kept")
	require.Equal(t, 40, second.TotalScore())

	items, err := s.scores.ListByEvent(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestScoringService_SubmitScore_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()
	input := SubmitScoreInput{EventID: "E1", ParticipantID: "P2", JuryID: "J2", Scores: scoring.Scores{Innovation: 5, Technical: 6, Presentation: 7, Impact: 8}}

	for i := 0; i < 3; i++ {
		_, err := s.scoring.SubmitScore(ctx, input)
		require.NoError(t, err)
	}

	board, err := s.scoring.Leaderboard(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, board.Rows, 1)
	require.Equal(t, 1, board.Rows[0].Submissions)
	require.Equal(t, 26.0, board.Rows[0].AverageScore)
}

func TestScoringService_SubmitScore_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input SubmitScoreInput
		want  error
	}{
		{name: "missing participant", input: SubmitScoreInput{EventID: "E1", JuryID: "J1"}, want: ErrInvalidInput},
		{name: "score above max", input: SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Innovation: 11}}, want: ErrInvalidInput},
		{name: "negative score", input: SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Impact: -1}}, want: ErrInvalidInput},
		{name: "participant from another event", input: SubmitScoreInput{EventID: "E1", ParticipantID: "P9", JuryID: "J1"}, want: ErrInvalidInput},
		{name: "unknown participant", input: SubmitScoreInput{EventID: "E1", ParticipantID: "P404", JuryID: "J1"}, want: ErrInvalidInput},
		{name: "jury not assigned", input: SubmitScoreInput{EventID: "E2", ParticipantID: "P9", JuryID: "J1"}, want: ErrForbidden},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newScenario()
			_, err := s.scoring.SubmitScore(context.Background(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			items, _ := s.scores.ListByEvent(context.Background(), tc.input.EventID)
			if len(items) != 0 {
				t.Fatalf("rejected submission must not be stored")
			}
		})
	}
}

func TestScoringService_SubmitScore_UsesEventLimits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()
	_, _, err := s.events.UpdateScoreLimits(ctx, "E1", scoring.Limits{Innovation: 20, Technical: 10, Presentation: 10, Impact: 10})
	require.NoError(t, err)

	_, err = s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Innovation: 18}})
	require.NoError(t, err)

	_, err = s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J2", Scores: scoring.Scores{Technical: 11}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoringService_Leaderboard_ConcreteScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()

	_, err := s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Innovation: 8, Technical: 7, Presentation: 9, Impact: 6}})
	require.NoError(t, err)
	_, err = s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J2", Scores: scoring.Scores{Innovation: 6, Technical: 8, Presentation: 7, Impact: 9}})
	require.NoError(t, err)

	board, err := s.scoring.Leaderboard(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, board.Rows, 1, "P2 has no submissions and must be excluded")

	row := board.Rows[0]
	require.Equal(t, "P1", row.ParticipantID)
	require.Equal(t, 30.0, row.AverageScore)
	require.Equal(t, 1, row.ProvisionalRank)
	require.Equal(t, "Neural Ninjas", row.Participant.DisplayTeamName())
}

func TestScoringService_Leaderboard_UnknownEventIsEmpty(t *testing.T) {
	t.Parallel()

	s := newScenario()
	board, err := s.scoring.Leaderboard(context.Background(), "E404")
	require.NoError(t, err)
	require.NotNil(t, board.Rows)
	require.Empty(t, board.Rows)
}

func TestScoringService_EvaluationSheet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()
	_, err := s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P2", JuryID: "J1", Scores: scoring.Scores{Innovation: 3, Technical: 3, Presentation: 3, Impact: 3}})
	require.NoError(t, err)
	_, err = s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J2", Scores: scoring.Scores{Innovation: 9, Technical: 9, Presentation: 9, Impact: 9}})
	require.NoError(t, err)

	sheet, err := s.scoring.EvaluationSheet(ctx, "J1", "E1")
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	require.Equal(t, "P1", sheet.Rows[0].Participant.ID)
	require.Nil(t, sheet.Rows[0].Submission, "J2's score must not leak into J1's sheet")
	require.NotNil(t, sheet.Rows[1].Submission)
	require.Equal(t, 12, sheet.Rows[1].Submission.TotalScore())
	require.Equal(t, 1, sheet.Scored)

	_, err = s.scoring.EvaluationSheet(ctx, "J1", "E2")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestScoringService_GetMyScore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newScenario()

	_, err := s.scoring.GetMyScore(ctx, "J1", "E1", "P1")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.scoring.SubmitScore(ctx, SubmitScoreInput{EventID: "E1", ParticipantID: "P1", JuryID: "J1", Scores: scoring.Scores{Innovation: 2, Technical: 2, Presentation: 2, Impact: 2}})
	require.NoError(t, err)

	got, err := s.scoring.GetMyScore(ctx, "J1", "E1", "P1")
	require.NoError(t, err)
	require.Equal(t, 8, got.TotalScore())
}
