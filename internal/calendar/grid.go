// Package calendar builds the month grid the bill calendar renders.
package calendar

import (
	"time"

	"github.com/hearthside/duebook/internal/model"
)

// GridCells is the fixed size of a month grid: six full weeks.
const GridCells = 42

// DaysPerWeek is the width of a grid row.
const DaysPerWeek = 7

// Day is one cell of a month grid.
type Day struct {
	// Date is the cell's calendar date.
	Date model.Date
	// Month is the month the cell visually belongs to, which differs
	// from the anchor month for leading and trailing cells.
	Month time.Month
}

// InMonth reports whether the cell belongs to the given month.
func (d Day) InMonth(month time.Month) bool {
	return d.Month == month
}

// MonthGrid returns the 42-cell grid for the month containing anchor.
// The grid starts on the Sunday on or before the first of the month and
// always spans six weeks, so it includes leading days from the previous
// month and trailing days from the following month (or months, when the
// anchor month ends early in the final week). Identical anchors yield
// identical grids.
func MonthGrid(anchor time.Time) []Day {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Date:  model.DateOf(d),
			Month: d.Month(),
		})
	}
	return days
}
