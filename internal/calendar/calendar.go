// Package calendar builds the month grid the booking form renders: a
// Sunday-first sequence of cells with leading blanks padding the first week,
// followed by one cell per day of the month, each classified as available,
// booked, or past. The grid is a pure function of its inputs; month and year
// navigation is just a rebuild with different arguments.
package calendar

import (
	"iter"
	"time"
)

const DateLayout = "2006-01-02"

type CellType string

const (
	CellBlank CellType = "blank"
	CellDay   CellType = "day"
)

type DayStatus string

const (
	StatusAvailable DayStatus = "available"
	StatusBooked    DayStatus = "booked"
	StatusPast      DayStatus = "past"
)

type Cell struct {
	Type     CellType  `json:"type"`
	Date     string    `json:"date,omitempty"` // YYYY-MM-DD, day cells only
	Day      int       `json:"day,omitempty"`
	Status   DayStatus `json:"status,omitempty"`
	Selected bool      `json:"selected,omitempty"`
}

// Weekdays is the column header row, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Month yields the cell sequence for one month. occupied holds YYYY-MM-DD
// keys for days with a non-rejected booking; today and selected are in the
// same format. A booked day stays booked even when it is also in the past.
// The selected flag is only ever set on an available cell, mirroring the
// rule that clicking a booked or past cell is a no-op.
func Month(year int, month time.Month, occupied map[string]bool, today, selected string) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < int(first.Weekday()); i++ {
			if !yield(Cell{Type: CellBlank}) {
				return
			}
		}

		for day := 1; day <= DaysIn(year, month); day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)

			status := StatusAvailable
			switch {
			case occupied[date]:
				status = StatusBooked
			case date < today:
				status = StatusPast
			}

			cell := Cell{
				Type:     CellDay,
				Date:     date,
				Day:      day,
				Status:   status,
				Selected: status == StatusAvailable && date == selected,
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// Build materializes the month grid for JSON rendering.
func Build(year int, month time.Month, occupied map[string]bool, today, selected string) []Cell {
	cells := make([]Cell, 0, 6*7)
	for cell := range Month(year, month, occupied, today, selected) {
		cells = append(cells, cell)
	}
	return cells
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampSelection moves a past selection forward to today. Dates compare
// lexically in YYYY-MM-DD form.
func ClampSelection(selected, today string) string {
	if selected == "" || selected < today {
		return today
	}
	return selected
}

// InitialSelection picks the date the form starts on: the requested date if
// the caller carried one over, otherwise today. When today is already
// occupied the selection is left empty and the surrounding flow renders an
// unselected state.
func InitialSelection(requested, today string, occupied map[string]bool) string {
	if requested != "" {
		return ClampSelection(requested, today)
	}
	if occupied[today] {
		return ""
	}
	return today
}
