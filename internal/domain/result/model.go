package result

import (
	"sort"
	"time"
)

// Result is the admin-approved outcome for one participant of an event.
// Only rows with IsPublished are visible publicly.
type Result struct {
	EventID       string
	ParticipantID string
	FinalScore    float64
	Rank          int
	Prize         string
	IsPublished   bool
	PublishedBy   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type EventGroup struct {
	EventID string
	Results []Result
}

// SortByRank orders results by rank, then participant id.
func SortByRank(items []Result) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rank != items[j].Rank {
			return items[i].Rank < items[j].Rank
		}
		return items[i].ParticipantID < items[j].ParticipantID
	})
}

// GroupByEvent buckets results per event. Buckets are ordered by event id and
// rows inside a bucket by rank.
func GroupByEvent(items []Result) []EventGroup {
	index := make(map[string]int)
	groups := make([]EventGroup, 0)
	for _, item := range items {
		pos, ok := index[item.EventID]
		if !ok {
			pos = len(groups)
			index[item.EventID] = pos
			groups = append(groups, EventGroup{EventID: item.EventID})
		}
		groups[pos].Results = append(groups[pos].Results, item)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].EventID < groups[j].EventID })
	for i := range groups {
		SortByRank(groups[i].Results)
	}
	return groups
}
