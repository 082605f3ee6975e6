package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layout is the single edit point for the template's fixed geometry. Both
// the header writer and the row builder consume it; nothing else in the
// package hard-codes a cell address.
type Layout struct {
	// Sheet is the worksheet name; empty selects the first sheet.
	Sheet string

	// StartRow is the 1-based row of the first data row.
	StartRow int

	// Header cells.
	DateCell  string
	AssetCell string

	// Data columns, as column letters.
	SequenceColumn  string
	RouteColumn     string
	LatitudeColumn  string
	LongitudeColumn string
	GoodColumn      string
	MediumColumn    string
	BadColumn       string
	NotesColumn     string
	PhotoColumn     string

	// Marker is the glyph written into the matching condition column.
	Marker string
}

// DefaultLayout matches the official inspection template: data from row 9,
// columns B through J, check marks for the three ratings in F/G/H.
func DefaultLayout() Layout {
	return Layout{
		StartRow:        9,
		DateCell:        "D5",
		AssetCell:       "C4",
		SequenceColumn:  "B",
		RouteColumn:     "C",
		LatitudeColumn:  "D",
		LongitudeColumn: "E",
		GoodColumn:      "F",
		MediumColumn:    "G",
		BadColumn:       "H",
		NotesColumn:     "I",
		PhotoColumn:     "J",
		Marker:          "√",
	}
}

// Row returns the worksheet row for the i-th entry of a batch (0-based).
func (l Layout) Row(i int) int { return l.StartRow + i }

// Cell joins a column letter with a row number.
func (l Layout) Cell(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}

// Validate checks the layout refers to real columns and cells.
func (l Layout) Validate() error {
	if l.StartRow < 1 {
		return fmt.Errorf("invalid start row %d", l.StartRow)
	}
	if l.Marker == "" {
		return fmt.Errorf("empty condition marker")
	}
	for _, cell := range []string{l.DateCell, l.AssetCell} {
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return fmt.Errorf("invalid header cell %q: %w", cell, err)
		}
	}
	columns := []string{
		l.SequenceColumn, l.RouteColumn, l.LatitudeColumn, l.LongitudeColumn,
		l.GoodColumn, l.MediumColumn, l.BadColumn, l.NotesColumn, l.PhotoColumn,
	}
	for _, col := range columns {
		if _, err := excelize.ColumnNameToNumber(col); err != nil {
			return fmt.Errorf("invalid column %q: %w", col, err)
		}
	}
	return nil
}

// monthNames is the fixed Indonesian month table used for the header date.
// A library locale is deliberately not used; the template wording is part
// of the official format.
var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatScheduleDate renders the header date as "D MonthName YYYY",
// e.g. "6 November 2023".
func FormatScheduleDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
