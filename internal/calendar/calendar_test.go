package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayCells(cells []Cell) []Cell {
	var days []Cell
	for _, c := range cells {
		if c.Type == CellDay {
			days = append(days, c)
		}
	}
	return days
}

func TestMonthLeadingBlanks(t *testing.T) {
	// November 2025 starts on a Saturday, so six blank cells pad the first
	// week of a Sunday-first grid.
	cells := Build(2025, time.November, nil, "2025-11-01", "")

	require.Len(t, cells, 6+30)
	for i := 0; i < 6; i++ {
		assert.Equal(t, CellBlank, cells[i].Type)
	}
	assert.Equal(t, CellDay, cells[6].Type)
	assert.Equal(t, "2025-11-01", cells[6].Date)
	assert.Equal(t, 30, cells[len(cells)-1].Day)
}

func TestMonthNoBlanksWhenStartingSunday(t *testing.T) {
	// February 2026 starts on a Sunday.
	cells := Build(2026, time.February, nil, "2026-02-01", "")

	require.NotEmpty(t, cells)
	assert.Equal(t, CellDay, cells[0].Type)
	assert.Len(t, cells, 28)
}

func TestMonthClassification(t *testing.T) {
	occupied := map[string]bool{"2025-11-29": true}
	today := "2025-11-28"

	cells := dayCells(Build(2025, time.November, occupied, today, today))
	require.Len(t, cells, 30)

	byDate := make(map[string]Cell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.Equal(t, StatusPast, byDate["2025-11-27"].Status)
	assert.Equal(t, StatusAvailable, byDate["2025-11-28"].Status)
	assert.Equal(t, StatusBooked, byDate["2025-11-29"].Status)
	assert.Equal(t, StatusAvailable, byDate["2025-11-30"].Status)

	assert.True(t, byDate["2025-11-28"].Selected)
	assert.False(t, byDate["2025-11-29"].Selected)
}

func TestBookedTakesPrecedenceOverPast(t *testing.T) {
	occupied := map[string]bool{"2025-11-10": true}

	cells := dayCells(Build(2025, time.November, occupied, "2025-11-20", ""))
	byDate := make(map[string]Cell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.Equal(t, StatusBooked, byDate["2025-11-10"].Status)
}

func TestSelectedNeverMarksUnselectableCell(t *testing.T) {
	occupied := map[string]bool{"2025-11-29": true}

	cells := dayCells(Build(2025, time.November, occupied, "2025-11-28", "2025-11-29"))
	for _, c := range cells {
		assert.False(t, c.Selected, "cell %s must not be selected", c.Date)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	occupied := map[string]bool{"2025-11-05": true, "2025-11-12": true}

	first := Build(2025, time.November, occupied, "2025-11-03", "2025-11-07")
	second := Build(2025, time.November, occupied, "2025-11-03", "2025-11-07")

	assert.Equal(t, first, second)
}

func TestMonthSequenceIsRestartable(t *testing.T) {
	seq := Month(2025, time.November, nil, "2025-11-01", "")

	var firstPass, secondPass []Cell
	for c := range seq {
		firstPass = append(firstPass, c)
	}
	for c := range seq {
		secondPass = append(secondPass, c)
	}

	assert.Equal(t, firstPass, secondPass)
}

func TestMonthEarlyBreak(t *testing.T) {
	count := 0
	for range Month(2025, time.November, nil, "2025-11-01", "") {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.December))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February)) // leap year
}

func TestClampSelection(t *testing.T) {
	assert.Equal(t, "2025-11-28", ClampSelection("2025-11-20", "2025-11-28"))
	assert.Equal(t, "2025-11-28", ClampSelection("", "2025-11-28"))
	assert.Equal(t, "2025-12-01", ClampSelection("2025-12-01", "2025-11-28"))
}

func TestInitialSelection(t *testing.T) {
	today := "2025-11-28"

	// Requested date carries over, clamped forward when in the past.
	assert.Equal(t, "2025-11-30", InitialSelection("2025-11-30", today, nil))
	assert.Equal(t, today, InitialSelection("2025-11-01", today, nil))

	// No request: today, unless today is occupied.
	assert.Equal(t, today, InitialSelection("", today, nil))
	assert.Equal(t, "", InitialSelection("", today, map[string]bool{today: true}))
}
