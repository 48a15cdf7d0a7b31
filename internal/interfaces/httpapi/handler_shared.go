package httpapi

import (
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

// Scores are pointers so an omitted field fails validation instead of
// silently becoming zero.
type submitScoreRequest struct {
	Innovation   *int   `json:"innovation" validate:"required,gte=0"`
	Technical    *int   `json:"technical" validate:"required,gte=0"`
	Presentation *int   `json:"presentation" validate:"required,gte=0"`
	Impact       *int   `json:"impact" validate:"required,gte=0"`
	Feedback     string `json:"feedback" validate:"max=4000"`
}

type publishResultRequest struct {
	Rank        *int     `json:"rank" validate:"required"`
	FinalScore  *float64 `json:"finalScore" validate:"required"`
	Prize       string   `json:"prize" validate:"max=200"`
	IsPublished bool     `json:"isPublished"`
}

type bulkPublishRequest struct {
	Items []bulkPublishItem `json:"items" validate:"required,min=1,max=500,dive"`
}

type bulkPublishItem struct {
	ParticipantID string   `json:"participantId" validate:"required"`
	Rank          *int     `json:"rank" validate:"required"`
	FinalScore    *float64 `json:"finalScore" validate:"required"`
	Prize         string   `json:"prize" validate:"max=200"`
	IsPublished   bool     `json:"isPublished"`
}

type scoreLimitsRequest struct {
	Innovation   int `json:"innovation" validate:"gte=1,lte=1000"`
	Technical    int `json:"technical" validate:"gte=1,lte=1000"`
	Presentation int `json:"presentation" validate:"gte=1,lte=1000"`
	Impact       int `json:"impact" validate:"gte=1,lte=1000"`
}

type createAssignmentRequest struct {
	JuryID  string `json:"juryId" validate:"required,max=200"`
	EventID string `json:"eventId" validate:"required,max=200"`
}

type scoresDTO struct {
	Innovation   int `json:"innovation"`
	Technical    int `json:"technical"`
	Presentation int `json:"presentation"`
	Impact       int `json:"impact"`
}

type categoryDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Max   int    `json:"max"`
}

type eventDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	EventType   string        `json:"eventType"`
	Location    string        `json:"location,omitempty"`
	StartDate   string        `json:"startDate,omitempty"`
	IsPublished bool          `json:"isPublished"`
	ScoreLimits scoresDTO     `json:"scoreLimits"`
	MaxTotal    int           `json:"maxTotal"`
	Categories  []categoryDTO `json:"categories"`
}

type participantDTO struct {
	ID                 string `json:"id"`
	EventID            string `json:"eventId"`
	TeamName           string `json:"teamName"`
	TeamLeaderName     string `json:"teamLeaderName"`
	IsTeamRegistration bool   `json:"isTeamRegistration"`
	Status             string `json:"status"`
}

type submissionDTO struct {
	ID            string    `json:"id"`
	EventID       string    `json:"eventId"`
	ParticipantID string    `json:"participantId"`
	JuryID        string    `json:"juryId"`
	Scores        scoresDTO `json:"scores"`
	TotalScore    int       `json:"totalScore"`
	Feedback      string    `json:"feedback,omitempty"`
	SubmittedAt   string    `json:"submittedAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

type evaluationRowDTO struct {
	Participant participantDTO `json:"participant"`
	Submission  *submissionDTO `json:"submission,omitempty"`
}

type evaluationSheetDTO struct {
	Event  eventDTO           `json:"event"`
	Rows   []evaluationRowDTO `json:"rows"`
	Scored int                `json:"scored"`
	Total  int                `json:"total"`
}

type categoryAveragesDTO struct {
	Innovation   float64 `json:"innovation"`
	Technical    float64 `json:"technical"`
	Presentation float64 `json:"presentation"`
	Impact       float64 `json:"impact"`
}

type leaderboardRowDTO struct {
	ProvisionalRank  int                 `json:"provisionalRank"`
	ParticipantID    string              `json:"participantId"`
	TeamName         string              `json:"teamName"`
	LeaderName       string              `json:"leaderName"`
	Submissions      int                 `json:"submissions"`
	AverageScore     float64             `json:"averageScore"`
	CategoryAverages categoryAveragesDTO `json:"categoryAverages"`
}

type leaderboardDTO struct {
	Event eventDTO            `json:"event"`
	Rows  []leaderboardRowDTO `json:"rows"`
}

type resultDTO struct {
	EventID       string  `json:"eventId"`
	ParticipantID string  `json:"participantId"`
	Rank          int     `json:"rank"`
	FinalScore    float64 `json:"finalScore"`
	Prize         string  `json:"prize,omitempty"`
	IsPublished   bool    `json:"isPublished"`
	PublishedBy   string  `json:"publishedBy,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

type publicResultDTO struct {
	Rank          int     `json:"rank"`
	ParticipantID string  `json:"participantId"`
	TeamName      string  `json:"teamName"`
	LeaderName    string  `json:"leaderName"`
	FinalScore    float64 `json:"finalScore"`
	Prize         string  `json:"prize,omitempty"`
}

type publicEventResultsDTO struct {
	EventID    string            `json:"eventId"`
	EventTitle string            `json:"eventTitle"`
	Results    []publicResultDTO `json:"results"`
}

type publishOutcomeDTO struct {
	ParticipantID string     `json:"participantId"`
	Result        *resultDTO `json:"result,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Error         string     `json:"error,omitempty"`
}

type bulkPublishResponseDTO struct {
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Outcomes  []publishOutcomeDTO `json:"outcomes"`
}

type assignmentDTO struct {
	ID         string `json:"id"`
	JuryID     string `json:"juryId"`
	EventID    string `json:"eventId"`
	AssignedBy string `json:"assignedBy,omitempty"`
	AssignedAt string `json:"assignedAt"`
}

type deliveryDTO struct {
	EventID   string `json:"eventId"`
	Event     string `json:"event"`
	Recipient string `json:"recipient"`
	MessageID string `json:"messageId,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type reminderSummaryDTO struct {
	Events     int           `json:"events"`
	Sent       int           `json:"sent"`
	Failed     int           `json:"failed"`
	Deliveries []deliveryDTO `json:"deliveries"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func scoresToDTO(s scoring.Scores) scoresDTO {
	return scoresDTO{
		Innovation:   s.Innovation,
		Technical:    s.Technical,
		Presentation: s.Presentation,
		Impact:       s.Impact,
	}
}

func eventToDTO(e event.Event) eventDTO {
	categories := make([]categoryDTO, 0, len(scoring.Categories))
	for _, c := range scoring.Categories {
		categories = append(categories, categoryDTO{
			Key:   string(c),
			Label: scoring.Label(c),
			Max:   e.ScoreLimits.Max(c),
		})
	}

	return eventDTO{
		ID:          e.ID,
		Title:       e.Title,
		EventType:   e.EventType,
		Location:    e.Location,
		StartDate:   formatTime(e.StartDate),
		IsPublished: e.IsPublished,
		ScoreLimits: scoresDTO{
			Innovation:   e.ScoreLimits.Innovation,
			Technical:    e.ScoreLimits.Technical,
			Presentation: e.ScoreLimits.Presentation,
			Impact:       e.ScoreLimits.Impact,
		},
		MaxTotal:   e.ScoreLimits.MaxTotal(),
		Categories: categories,
	}
}

func participantToDTO(p participant.Participant) participantDTO {
	return participantDTO{
		ID:                 p.ID,
		EventID:            p.EventID,
		TeamName:           p.DisplayTeamName(),
		TeamLeaderName:     p.TeamLeaderName,
		IsTeamRegistration: p.IsTeamRegistration,
		Status:             string(p.Status),
	}
}

func submissionToDTO(s scoring.Submission) submissionDTO {
	return submissionDTO{
		ID:            s.ID,
		EventID:       s.EventID,
		ParticipantID: s.ParticipantID,
		JuryID:        s.JuryID,
		Scores:        scoresToDTO(s.Scores),
		TotalScore:    s.TotalScore(),
		Feedback:      s.Feedback,
		SubmittedAt:   formatTime(s.SubmittedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func evaluationSheetToDTO(sheet usecase.EvaluationSheet) evaluationSheetDTO {
	rows := make([]evaluationRowDTO, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		item := evaluationRowDTO{Participant: participantToDTO(row.Participant)}
		if row.Submission != nil {
			sub := submissionToDTO(*row.Submission)
			item.Submission = &sub
		}
		rows = append(rows, item)
	}
	return evaluationSheetDTO{
		Event:  eventToDTO(sheet.Event),
		Rows:   rows,
		Scored: sheet.Scored,
		Total:  len(sheet.Rows),
	}
}

func leaderboardToDTO(board usecase.Leaderboard) leaderboardDTO {
	rows := make([]leaderboardRowDTO, 0, len(board.Rows))
	for _, row := range board.Rows {
		rows = append(rows, leaderboardRowDTO{
			ProvisionalRank: row.ProvisionalRank,
			ParticipantID:   row.ParticipantID,
			TeamName:        row.Participant.DisplayTeamName(),
			LeaderName:      row.Participant.TeamLeaderName,
			Submissions:     row.Submissions,
			AverageScore:    scoring.RoundForDisplay(row.AverageScore, 2),
			CategoryAverages: categoryAveragesDTO{
				Innovation:   scoring.RoundForDisplay(row.CategoryAverages.Innovation, 2),
				Technical:    scoring.RoundForDisplay(row.CategoryAverages.Technical, 2),
				Presentation: scoring.RoundForDisplay(row.CategoryAverages.Presentation, 2),
				Impact:       scoring.RoundForDisplay(row.CategoryAverages.Impact, 2),
			},
		})
	}
	return leaderboardDTO{Event: eventToDTO(board.Event), Rows: rows}
}

func resultToDTO(r result.Result) resultDTO {
	return resultDTO{
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		Rank:          r.Rank,
		FinalScore:    r.FinalScore,
		Prize:         r.Prize,
		IsPublished:   r.IsPublished,
		PublishedBy:   r.PublishedBy,
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func publicEventResultsToDTO(groups []usecase.PublicEventResults) []publicEventResultsDTO {
	out := make([]publicEventResultsDTO, 0, len(groups))
	for _, group := range groups {
		items := make([]publicResultDTO, 0, len(group.Results))
		for _, r := range group.Results {
			items = append(items, publicResultDTO{
				Rank:          r.Rank,
				ParticipantID: r.ParticipantID,
				TeamName:      r.TeamName,
				LeaderName:    r.LeaderName,
				FinalScore:    r.FinalScore,
				Prize:         r.Prize,
			})
		}
		out = append(out, publicEventResultsDTO{
			EventID:    group.Event.ID,
			EventTitle: group.Event.Title,
			Results:    items,
		})
	}
	return out
}

func assignmentToDTO(a jury.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:         a.ID,
		JuryID:     a.JuryID,
		EventID:    a.EventID,
		AssignedBy: a.AssignedBy,
		AssignedAt: formatTime(a.AssignedAt),
	}
}

func deliveryToDTO(d notification.Delivery) deliveryDTO {
	return deliveryDTO{
		EventID:   d.EventID,
		Event:     d.Event,
		Recipient: d.Recipient,
		MessageID: d.MessageID,
		Status:    string(d.Status),
		Error:     d.Error,
	}
}
