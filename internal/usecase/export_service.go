package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Results"

// ExportFile is a rendered leaderboard download.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

type leaderboardSource interface {
	Leaderboard(ctx context.Context, eventID string) (Leaderboard, error)
}

type ExportService struct {
	leaderboards leaderboardSource
}

func NewExportService(leaderboards leaderboardSource) *ExportService {
	return &ExportService{leaderboards: leaderboards}
}

func exportHeader() []string {
	header := []string{"Rank", "Team Name", "Leader"}
	for _, c := range scoring.Categories {
		header = append(header, scoring.Label(c))
	}
	return append(header, "Total Score")
}

// LeaderboardCSV renders the provisional leaderboard. Category averages are
// shown as whole numbers and the total with two decimals.
func (s *ExportService) LeaderboardCSV(ctx context.Context, eventID string) (ExportFile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.LeaderboardCSV")
	defer span.End()

	board, err := s.leaderboards.Leaderboard(ctx, eventID)
	if err != nil {
		return ExportFile{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader()); err != nil {
		return ExportFile{}, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range board.Rows {
		record := []string{
			strconv.Itoa(row.ProvisionalRank),
			row.Participant.DisplayTeamName(),
			row.Participant.TeamLeaderName,
		}
		for _, c := range scoring.Categories {
			record = append(record, formatFixed(row.CategoryAverages.Get(c), 0))
		}
		record = append(record, formatFixed(row.AverageScore, 2))
		if err := w.Write(record); err != nil {
			return ExportFile{}, fmt.Errorf("write csv row participant=%s: %w", row.ParticipantID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ExportFile{}, fmt.Errorf("flush csv: %w", err)
	}

	return ExportFile{
		Name:        fmt.Sprintf("results_event_%s.csv", board.Event.ID),
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	}, nil
}

// LeaderboardXLSX renders the same table as LeaderboardCSV into a workbook
// with numeric cells.
func (s *ExportService) LeaderboardXLSX(ctx context.Context, eventID string) (ExportFile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.LeaderboardXLSX")
	defer span.End()

	board, err := s.leaderboards.Leaderboard(ctx, eventID)
	if err != nil {
		return ExportFile{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, exportSheetName); err != nil {
		return ExportFile{}, fmt.Errorf("rename sheet: %w", err)
	}
	sheet = exportSheetName

	header := exportHeader()
	headerCells := make([]interface{}, len(header))
	for i, v := range header {
		headerCells[i] = v
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return ExportFile{}, fmt.Errorf("write xlsx header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return ExportFile{}, fmt.Errorf("create header style: %w", err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return ExportFile{}, fmt.Errorf("header cell name: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, bold); err != nil {
		return ExportFile{}, fmt.Errorf("style xlsx header: %w", err)
	}

	for idx, row := range board.Rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return ExportFile{}, fmt.Errorf("row cell name: %w", err)
		}
		cells := []interface{}{
			row.ProvisionalRank,
			row.Participant.DisplayTeamName(),
			row.Participant.TeamLeaderName,
		}
		for _, c := range scoring.Categories {
			cells = append(cells, scoring.RoundForDisplay(row.CategoryAverages.Get(c), 0))
		}
		cells = append(cells, scoring.RoundForDisplay(row.AverageScore, 2))
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return ExportFile{}, fmt.Errorf("write xlsx row participant=%s: %w", row.ParticipantID, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, fmt.Errorf("write xlsx: %w", err)
	}

	return ExportFile{
		Name:        fmt.Sprintf("results_event_%s.xlsx", board.Event.ID),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        buf.Bytes(),
	}, nil
}

// formatFixed rounds half away from zero before formatting so 7.5 prints as 8.
func formatFixed(v float64, places int) string {
	return strconv.FormatFloat(scoring.RoundForDisplay(v, places), 'f', places, 64)
}
