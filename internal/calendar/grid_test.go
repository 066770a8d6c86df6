package calendar

import (
	"testing"
	"time"

	"github.com/hearthside/duebook/internal/model"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantStart model.Date
	}{
		{
			name:      "month starting mid-week",
			anchor:    time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
			wantStart: model.NewDate(2024, time.February, 25),
		},
		{
			name:      "month starting on Sunday",
			anchor:    time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
			wantStart: model.NewDate(2024, time.September, 1),
		},
		{
			name:      "leap February",
			anchor:    time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			wantStart: model.NewDate(2024, time.January, 28),
		},
		{
			name:      "December wraps into next year",
			anchor:    time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC),
			wantStart: model.NewDate(2023, time.November, 26),
		},
		{
			name:      "anchor with time of day and location",
			anchor:    time.Date(2024, time.March, 16, 23, 59, 59, 0, time.FixedZone("JST", 9*3600)),
			wantStart: model.NewDate(2024, time.February, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.anchor)

			if len(grid) != GridCells {
				t.Fatalf("MonthGrid() returned %d cells, want %d", len(grid), GridCells)
			}
			if grid[0].Date.Weekday() != time.Sunday {
				t.Errorf("grid starts on %v, want Sunday", grid[0].Date.Weekday())
			}
			if !grid[0].Date.Equal(tt.wantStart.Time) {
				t.Errorf("grid starts on %v, want %v", grid[0].Date, tt.wantStart)
			}

			// Cells must be consecutive days.
			for i := 1; i < len(grid); i++ {
				want := grid[i-1].Date.AddDate(0, 0, 1)
				if !grid[i].Date.Equal(want) {
					t.Fatalf("cell %d is %v, want %v", i, grid[i].Date, want)
				}
			}

			// The anchor month's first and last day must be present.
			firstOfMonth := model.NewDate(tt.anchor.Year(), tt.anchor.Month(), 1)
			lastOfMonth := model.DateOf(firstOfMonth.AddDate(0, 1, -1))
			var sawFirst, sawLast bool
			for _, day := range grid {
				if day.Date.Equal(firstOfMonth.Time) {
					sawFirst = true
				}
				if day.Date.Equal(lastOfMonth.Time) {
					sawLast = true
				}
			}
			if !sawFirst || !sawLast {
				t.Errorf("grid missing month boundary days: first=%v last=%v", sawFirst, sawLast)
			}

			// Month markers must agree with the cell dates.
			for i, day := range grid {
				if day.Month != day.Date.Month() {
					t.Errorf("cell %d month = %v, date month = %v", i, day.Month, day.Date.Month())
				}
			}
		})
	}
}

func TestMonthGridIdempotent(t *testing.T) {
	anchor := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
	a := MonthGrid(anchor)
	b := MonthGrid(anchor)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical anchors: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDayInMonth(t *testing.T) {
	grid := MonthGrid(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	var inMonth int
	for _, day := range grid {
		if day.InMonth(time.March) {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Errorf("grid contains %d March cells, want 31", inMonth)
	}
	if grid[0].InMonth(time.March) {
		t.Errorf("leading cell %v should not belong to March", grid[0].Date)
	}
}
