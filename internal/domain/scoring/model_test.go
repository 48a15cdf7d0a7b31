package scoring

import (
	"errors"
	"testing"
)

func TestLimits_Check(t *testing.T) {
	limits := Limits{Innovation: 10, Technical: 5, Presentation: 10, Impact: 20}

	cases := []struct {
		name    string
		scores  Scores
		wantErr bool
	}{
		{name: "all zero", scores: Scores{}, wantErr: false},
		{name: "exact maxima", scores: Scores{10, 5, 10, 20}, wantErr: false},
		{name: "technical above max", scores: Scores{0, 6, 0, 0}, wantErr: true},
		{name: "negative impact", scores: Scores{0, 0, 0, -1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := limits.Check(tc.scores)
			if tc.wantErr && !errors.Is(err, ErrScoreOutOfRange) {
				t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLimits_Validate(t *testing.T) {
	if err := DefaultLimits().Validate(); err != nil {
		t.Fatalf("default limits should be valid: %v", err)
	}
	if DefaultLimits().MaxTotal() != 40 {
		t.Fatalf("unexpected default max total: %d", DefaultLimits().MaxTotal())
	}
	if err := (Limits{Innovation: 10, Technical: 10, Presentation: 0, Impact: 10}).Validate(); !errors.Is(err, ErrInvalidLimits) {
		t.Fatalf("expected ErrInvalidLimits, got %v", err)
	}
}

func TestSubmission_TotalScore(t *testing.T) {
	s := Submission{Scores: Scores{Innovation: 8, Technical: 7, Presentation: 9, Impact: 6}}
	if got := s.TotalScore(); got != 30 {
		t.Fatalf("unexpected total: got=%d want=30", got)
	}
}

func TestLabel(t *testing.T) {
	if Label(CategoryTechnical) != "Feasibility" || Label(CategoryImpact) != "Revenue" {
		t.Fatalf("unexpected labels")
	}
	if Label(Category("custom")) != "custom" {
		t.Fatalf("unknown categories fall back to their key")
	}
}
