package scoring

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrInvalidLimits   = errors.New("invalid score limits")
)

// Category is one of the four fixed rating slots. Display labels live in
// CategoryLabels and never leak into stored data.
type Category string

const (
	CategoryInnovation   Category = "innovation"
	CategoryTechnical    Category = "technical"
	CategoryPresentation Category = "presentation"
	CategoryImpact       Category = "impact"
)

// Categories is the canonical slot order used for validation, export columns
// and display.
var Categories = []Category{
	CategoryInnovation,
	CategoryTechnical,
	CategoryPresentation,
	CategoryImpact,
}

const DefaultCategoryMax = 10

// Scores holds one juror's integer points per category.
type Scores struct {
	Innovation   int
	Technical    int
	Presentation int
	Impact       int
}

func (s Scores) Get(c Category) int {
	switch c {
	case CategoryInnovation:
		return s.Innovation
	case CategoryTechnical:
		return s.Technical
	case CategoryPresentation:
		return s.Presentation
	case CategoryImpact:
		return s.Impact
	default:
		return 0
	}
}

func (s Scores) Total() int {
	return s.Innovation + s.Technical + s.Presentation + s.Impact
}

// Limits are the per-event category maxima. A zero value is invalid; events
// receive DefaultLimits when created without explicit settings.
type Limits struct {
	Innovation   int
	Technical    int
	Presentation int
	Impact       int
}

func DefaultLimits() Limits {
	return Limits{
		Innovation:   DefaultCategoryMax,
		Technical:    DefaultCategoryMax,
		Presentation: DefaultCategoryMax,
		Impact:       DefaultCategoryMax,
	}
}

func (l Limits) Max(c Category) int {
	switch c {
	case CategoryInnovation:
		return l.Innovation
	case CategoryTechnical:
		return l.Technical
	case CategoryPresentation:
		return l.Presentation
	case CategoryImpact:
		return l.Impact
	default:
		return 0
	}
}

// MaxTotal is the highest total a single submission can reach.
func (l Limits) MaxTotal() int {
	return l.Innovation + l.Technical + l.Presentation + l.Impact
}

func (l Limits) Validate() error {
	for _, c := range Categories {
		if l.Max(c) < 1 {
			return fmt.Errorf("%w: %s max must be >= 1, got %d", ErrInvalidLimits, c, l.Max(c))
		}
	}
	return nil
}

// Check reports the first category whose score falls outside [0, max].
func (l Limits) Check(s Scores) error {
	for _, c := range Categories {
		v, max := s.Get(c), l.Max(c)
		if v < 0 || v > max {
			return fmt.Errorf("%w: %s=%d not in [0, %d]", ErrScoreOutOfRange, c, v, max)
		}
	}
	return nil
}

// Submission is one juror's evaluation of one participant. There is at most
// one per (ParticipantID, JuryID); a resubmission replaces Scores and Feedback
// but keeps SubmittedAt.
type Submission struct {
	ID            string
	ParticipantID string
	JuryID        string
	EventID       string
	Scores        Scores
	Feedback      string
	SubmittedAt   time.Time
	UpdatedAt     time.Time
}

func (s Submission) TotalScore() int {
	return s.Scores.Total()
}
