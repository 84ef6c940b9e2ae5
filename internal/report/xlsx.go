package report

import (
	"fmt"

	"github.com/leddie24/neetcode-tracker/internal/algorithm"
	"github.com/leddie24/neetcode-tracker/internal/calendar"
	"github.com/leddie24/neetcode-tracker/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	ProgressSheet = "Progress"
	SummarySheet  = "Summary"
)

var progressHeader = []string{
	"ID", "Name", "Category", "Difficulty", "Status", "Solved On",
	"R1", "R2", "R3", "R4", "R5", "Notes",
}

// WriteXLSX writes a spreadsheet with one row per problem and a summary sheet.
// Review cells read "YYYY-MM-DD (Status)" as of today.
func WriteXLSX(path string, problems []models.Problem, state models.ProgressState, today calendar.Date) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", ProgressSheet)
	f.NewSheet(SummarySheet)

	if err := writeRow(f, ProgressSheet, 1, toCells(progressHeader)); err != nil {
		return err
	}
	if err := styleProgressSheet(f); err != nil {
		return err
	}

	for i, p := range problems {
		if err := writeRow(f, ProgressSheet, i+2, problemRow(p, state[p.ID], today)); err != nil {
			return err
		}
	}

	if err := writeSummary(f, problems, state, today); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

func styleProgressSheet(f *excelize.File) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(progressHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ProgressSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	widths := []struct {
		from, to string
		width    float64
	}{
		{"B", "B", 40},
		{"C", "C", 24},
		{"G", "K", 24},
	}
	for _, w := range widths {
		if err := f.SetColWidth(ProgressSheet, w.from, w.to, w.width); err != nil {
			return fmt.Errorf("failed to set column width %s:%s: %w", w.from, w.to, err)
		}
	}
	return nil
}

func problemRow(p models.Problem, rec models.ProgressRecord, today calendar.Date) []interface{} {
	status := "Not Solved"
	if rec.Solved {
		status = "Solved"
	}
	row := []interface{}{p.ID, p.Name, p.Category, string(p.Difficulty), status, rec.SolvedDate.String()}

	reviews := make([]interface{}, models.ReviewCount)
	for i := range reviews {
		reviews[i] = ""
	}
	for _, c := range algorithm.Schedule(rec, today) {
		cell := fmt.Sprintf("%s (%s)", c.Due, c.Status)
		if c.Status == algorithm.Completed && !c.CompletedOn.IsZero() {
			cell = fmt.Sprintf("%s (Completed %s)", c.Due, c.CompletedOn)
		}
		reviews[c.Index] = cell
	}
	row = append(row, reviews...)
	return append(row, p.Notes)
}

func writeSummary(f *excelize.File, problems []models.Problem, state models.ProgressState, today calendar.Date) error {
	rows := [][]interface{}{
		{"As of", today.String()},
		{"Total", len(problems)},
	}
	solved := 0
	byDifficulty := map[models.Difficulty]int{}
	for _, p := range problems {
		if state[p.ID].Solved {
			solved++
			byDifficulty[p.Difficulty]++
		}
	}
	rows = append(rows, []interface{}{"Solved", solved})
	for _, d := range models.Difficulties {
		rows = append(rows, []interface{}{string(d) + " solved", byDifficulty[d]})
	}
	rows = append(rows, []interface{}{"Due for review", algorithm.DueCount(problems, state, today)})

	for i, r := range rows {
		if err := writeRow(f, SummarySheet, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
