package scoring

import (
	"math"
	"sort"
	"time"
)

// CategoryAverages are unrounded per-category means across a participant's
// submissions.
type CategoryAverages struct {
	Innovation   float64
	Technical    float64
	Presentation float64
	Impact       float64
}

func (a CategoryAverages) Get(c Category) float64 {
	switch c {
	case CategoryInnovation:
		return a.Innovation
	case CategoryTechnical:
		return a.Technical
	case CategoryPresentation:
		return a.Presentation
	case CategoryImpact:
		return a.Impact
	default:
		return 0
	}
}

// Result is one provisional leaderboard row.
type Result struct {
	ParticipantID    string
	Submissions      int
	TotalSum         int
	AverageScore     float64
	CategoryAverages CategoryAverages
	FirstSubmittedAt time.Time
	ProvisionalRank  int
}

type group struct {
	participantID string
	count         int
	totalSum      int
	categorySums  Scores
	firstAt       time.Time
}

// Aggregate groups submissions by participant and ranks them by average total
// score, highest first. Ties go to the participant whose earliest submission
// came first, then to the lower participant id. Participants without
// submissions never appear. Empty input yields an empty, non-nil slice.
func Aggregate(submissions []Submission) []Result {
	groups := make(map[string]*group)
	for _, s := range submissions {
		g, ok := groups[s.ParticipantID]
		if !ok {
			g = &group{participantID: s.ParticipantID, firstAt: s.SubmittedAt}
			groups[s.ParticipantID] = g
		}
		g.count++
		g.totalSum += s.TotalScore()
		g.categorySums.Innovation += s.Scores.Innovation
		g.categorySums.Technical += s.Scores.Technical
		g.categorySums.Presentation += s.Scores.Presentation
		g.categorySums.Impact += s.Scores.Impact
		if s.SubmittedAt.Before(g.firstAt) {
			g.firstAt = s.SubmittedAt
		}
	}

	out := make([]Result, 0, len(groups))
	for _, g := range groups {
		n := float64(g.count)
		out = append(out, Result{
			ParticipantID: g.participantID,
			Submissions:   g.count,
			TotalSum:      g.totalSum,
			AverageScore:  float64(g.totalSum) / n,
			CategoryAverages: CategoryAverages{
				Innovation:   float64(g.categorySums.Innovation) / n,
				Technical:    float64(g.categorySums.Technical) / n,
				Presentation: float64(g.categorySums.Presentation) / n,
				Impact:       float64(g.categorySums.Impact) / n,
			},
			FirstSubmittedAt: g.firstAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageScore != out[j].AverageScore {
			return out[i].AverageScore > out[j].AverageScore
		}
		if !out[i].FirstSubmittedAt.Equal(out[j].FirstSubmittedAt) {
			return out[i].FirstSubmittedAt.Before(out[j].FirstSubmittedAt)
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})

	for i := range out {
		out[i].ProvisionalRank = i + 1
	}

	return out
}

// Find returns the leaderboard row for participantID.
func Find(results []Result, participantID string) (Result, bool) {
	for _, r := range results {
		if r.ParticipantID == participantID {
			return r, true
		}
	}
	return Result{}, false
}

// RoundForDisplay rounds half away from zero to the given decimal places.
// Ranking always uses the unrounded values.
func RoundForDisplay(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
