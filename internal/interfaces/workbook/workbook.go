package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetSummary = "Summary"
	SheetShots   = "Shots"
)

var shotColumns = []any{
	"Match",
	"team",
	"x",
	"y",
	"shot_outcome",
	"shot_end_location_y",
	"shot_end_location_z",
	"shot_statsbomb_xg",
}

// Report is the filtered selection exported to a workbook.
type Report struct {
	Selection shot.Selection
	Summary   shot.Summary
	Shots     []shot.Shot
}

// Write encodes the report as an XLSX workbook with a summary sheet and one
// row per filtered shot.
func Write(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetShots); err != nil {
		return fmt.Errorf("create shots sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, report, headerStyle); err != nil {
		return err
	}
	if err := writeShots(f, report.Shots, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, report Report, headerStyle int) error {
	rows := [][]any{
		{"Match", report.Selection.MatchID},
		{"Teams", strings.Join(report.Selection.Teams, ", ")},
		{"Outcome", string(report.Selection.Outcome)},
		{"Total Shots", report.Summary.TotalShots},
		{"Goals", report.Summary.Goals},
		{"Saves", report.Summary.Saves},
		{"Total xG", shot.Round2(report.Summary.TotalXG)},
		{},
		{"Team", "xG"},
	}
	for _, item := range report.Summary.TeamXG {
		rows = append(rows, []any{item.Team, shot.Round2(item.XG)})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle); err != nil {
		return fmt.Errorf("style summary labels: %w", err)
	}
	if err := f.SetCellStyle(SheetSummary, "B9", "B9", headerStyle); err != nil {
		return fmt.Errorf("style team header: %w", err)
	}
	return f.SetColWidth(SheetSummary, "A", "B", 24)
}

func writeShots(f *excelize.File, shots []shot.Shot, headerStyle int) error {
	header := shotColumns
	if err := f.SetSheetRow(SheetShots, "A1", &header); err != nil {
		return fmt.Errorf("write shots header: %w", err)
	}
	if err := f.SetCellStyle(SheetShots, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("style shots header: %w", err)
	}

	for i, item := range shots {
		row := []any{
			item.MatchID,
			item.Team,
			cellValue(item.X),
			cellValue(item.Y),
			item.Outcome,
			cellValue(item.EndY),
			cellValue(item.EndZ),
			cellValue(item.XG),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetShots, cell, &row); err != nil {
			return fmt.Errorf("write shot row %d: %w", i+2, err)
		}
	}

	return f.SetColWidth(SheetShots, "A", "A", 28)
}

// cellValue leaves missing numbers as empty cells.
func cellValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
