// Package report derives the calendar's display views from the bill
// collection: search filtering, per-day buckets, the overdue/upcoming
// partition, and month totals. Everything here is a pure function of its
// inputs and is recomputed on every render; at household scale there is
// nothing worth caching.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hearthside/duebook/internal/model"
)

// UpcomingDisplayLimit caps the upcoming list for display surfaces. The
// aggregation functions themselves always return the full set.
const UpcomingDisplayLimit = 6

// Filter returns the bills whose title, category or notes contain the
// trimmed query, case-insensitively. An empty query returns all bills.
func Filter(bills []model.Bill, query string) []model.Bill {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return bills
	}
	var out []model.Bill
	for _, b := range bills {
		if strings.Contains(b.SearchText(), query) {
			out = append(out, b)
		}
	}
	return out
}

// DueOn returns the bills due on the given calendar day.
func DueOn(bills []model.Bill, day model.Date) []model.Bill {
	var out []model.Bill
	for _, b := range bills {
		if b.DueDate.SameDay(day.Time) {
			out = append(out, b)
		}
	}
	return out
}

// Partition splits the unpaid bills into overdue and upcoming relative to
// now. A bill is overdue when its due date precedes the start of now's
// calendar day; every other unpaid bill is upcoming. Paid bills appear in
// neither slice. Upcoming is sorted ascending by due date.
func Partition(bills []model.Bill, now time.Time) (overdue, upcoming []model.Bill) {
	today := model.DateOf(now)
	for _, b := range bills {
		if b.Paid {
			continue
		}
		if b.DueDate.Before(today.Time) {
			overdue = append(overdue, b)
		} else {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate.Time)
	})
	return overdue, upcoming
}

// Totals summarizes one displayed month.
type Totals struct {
	Total  decimal.Decimal
	Paid   decimal.Decimal
	Unpaid decimal.Decimal
}

// MonthTotals sums the bills due in the given year and month. Unpaid is
// clamped at zero so inconsistent data (paid exceeding total) never
// yields a negative display value.
func MonthTotals(bills []model.Bill, year int, month time.Month) Totals {
	t := Totals{
		Total:  decimal.Zero,
		Paid:   decimal.Zero,
		Unpaid: decimal.Zero,
	}
	for _, b := range bills {
		if !b.DueDate.InMonth(year, month) {
			continue
		}
		t.Total = t.Total.Add(b.Amount)
		if b.Paid {
			t.Paid = t.Paid.Add(b.Amount)
		}
	}
	unpaid := t.Total.Sub(t.Paid)
	if unpaid.IsPositive() {
		t.Unpaid = unpaid
	}
	return t
}
