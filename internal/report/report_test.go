package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hearthside/duebook/internal/calendar"
	"github.com/hearthside/duebook/internal/model"
)

func bill(id, title, category string, amount string, due model.Date, paid bool) model.Bill {
	return model.Bill{
		ID:       id,
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		DueDate:  due,
		Category: category,
		Paid:     paid,
	}
}

func TestFilter(t *testing.T) {
	bills := []model.Bill{
		bill("b1", "Internet", "Utilities", "60.00", model.NewDate(2024, time.March, 16), false),
		bill("b2", "Rent", "Home", "1200.00", model.NewDate(2024, time.March, 1), false),
		bill("b3", "Car wash", "Car", "15.00", model.NewDate(2024, time.March, 5), false),
	}
	bills[2].Notes = "monthly subscription"

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query passes everything", query: "", wantIDs: []string{"b1", "b2", "b3"}},
		{name: "whitespace query passes everything", query: "   ", wantIDs: []string{"b1", "b2", "b3"}},
		{name: "title substring", query: "net", wantIDs: []string{"b1"}},
		{name: "case insensitive", query: "RENT", wantIDs: []string{"b2"}},
		{name: "matches category", query: "home", wantIDs: []string{"b2"}},
		{name: "matches notes", query: "subscription", wantIDs: []string{"b3"}},
		{name: "no match", query: "electricity", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(bills, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter(%q) returned %d bills, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, b := range got {
				if b.ID != tt.wantIDs[i] {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.query, i, b.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2024, time.March, 20, 14, 30, 0, 0, time.Local)
	bills := []model.Bill{
		bill("overdue", "Internet", "Internet", "60.00", model.NewDate(2024, time.March, 16), false),
		bill("paid", "Rent", "Home", "1200.00", model.NewDate(2024, time.March, 1), true),
		bill("later", "Insurance", "Insurance", "80.00", model.NewDate(2024, time.April, 2), false),
		bill("today", "Phone", "Phone", "40.00", model.NewDate(2024, time.March, 20), false),
	}

	overdue, upcoming := Partition(bills, now)

	if len(overdue) != 1 || overdue[0].ID != "overdue" {
		t.Errorf("overdue = %v, want exactly the March 16 bill", overdue)
	}
	// Due today is upcoming, not overdue, and upcoming is sorted by due date.
	if len(upcoming) != 2 || upcoming[0].ID != "today" || upcoming[1].ID != "later" {
		t.Errorf("upcoming = %v, want [today later]", upcoming)
	}
	for _, b := range append(overdue, upcoming...) {
		if b.Paid {
			t.Errorf("paid bill %s leaked into a partition", b.ID)
		}
	}
}

func TestMonthTotals(t *testing.T) {
	tests := []struct {
		name       string
		bills      []model.Bill
		wantTotal  string
		wantPaid   string
		wantUnpaid string
	}{
		{
			name: "single unpaid bill",
			bills: []model.Bill{
				bill("b1", "Internet", "Internet", "60.00", model.NewDate(2024, time.March, 16), false),
			},
			wantTotal:  "60.00",
			wantPaid:   "0",
			wantUnpaid: "60.00",
		},
		{
			name: "single bill toggled paid",
			bills: []model.Bill{
				bill("b1", "Rent", "Home", "1200.00", model.NewDate(2024, time.March, 1), true),
			},
			wantTotal:  "1200.00",
			wantPaid:   "1200.00",
			wantUnpaid: "0",
		},
		{
			name: "other months excluded",
			bills: []model.Bill{
				bill("b1", "Internet", "Internet", "60.00", model.NewDate(2024, time.March, 16), false),
				bill("b2", "Internet", "Internet", "60.00", model.NewDate(2024, time.April, 16), false),
				bill("b3", "Internet", "Internet", "60.00", model.NewDate(2023, time.March, 16), false),
			},
			wantTotal:  "60.00",
			wantPaid:   "0",
			wantUnpaid: "60.00",
		},
		{
			name: "paid exceeding total clamps unpaid at zero",
			bills: []model.Bill{
				bill("b1", "Rent", "Home", "-100.00", model.NewDate(2024, time.March, 1), false),
				bill("b2", "Loan", "Loan", "50.00", model.NewDate(2024, time.March, 2), true),
			},
			wantTotal:  "-50.00",
			wantPaid:   "50.00",
			wantUnpaid: "0",
		},
		{
			name:       "empty month",
			bills:      nil,
			wantTotal:  "0",
			wantPaid:   "0",
			wantUnpaid: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthTotals(tt.bills, 2024, time.March)
			if !got.Total.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
			if !got.Paid.Equal(decimal.RequireFromString(tt.wantPaid)) {
				t.Errorf("Paid = %s, want %s", got.Paid, tt.wantPaid)
			}
			if !got.Unpaid.Equal(decimal.RequireFromString(tt.wantUnpaid)) {
				t.Errorf("Unpaid = %s, want %s", got.Unpaid, tt.wantUnpaid)
			}
		})
	}
}

// Every bill due within the displayed month must land in exactly one day
// bucket of the displayed grid.
func TestGridBucketsConserveMonthBills(t *testing.T) {
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	bills := []model.Bill{
		bill("b1", "Internet", "Internet", "60.00", model.NewDate(2024, time.March, 1), false),
		bill("b2", "Rent", "Home", "1200.00", model.NewDate(2024, time.March, 16), false),
		bill("b3", "Phone", "Phone", "40.00", model.NewDate(2024, time.March, 31), true),
		bill("b4", "Car", "Car", "300.00", model.NewDate(2024, time.April, 1), false),
		bill("b5", "Water", "Utilities", "25.00", model.NewDate(2024, time.February, 28), false),
	}

	var bucketed int
	for _, day := range calendar.MonthGrid(anchor) {
		if !day.InMonth(time.March) {
			continue
		}
		bucketed += len(DueOn(bills, day.Date))
	}

	var inMonth int
	for _, b := range bills {
		if b.DueDate.InMonth(2024, time.March) {
			inMonth++
		}
	}
	if bucketed != inMonth {
		t.Errorf("grid buckets hold %d March bills, month has %d", bucketed, inMonth)
	}
}

func TestOverdueScenario(t *testing.T) {
	// One unpaid bill due 2024-03-16, amount 60.00, viewed on 2024-03-20.
	bills := []model.Bill{
		bill("b1", "Internet", "Internet", "60.00", model.NewDate(2024, time.March, 16), false),
	}
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)

	overdue, upcoming := Partition(bills, now)
	if len(overdue) != 1 || len(upcoming) != 0 {
		t.Fatalf("partition = (%d overdue, %d upcoming), want (1, 0)", len(overdue), len(upcoming))
	}

	totals := MonthTotals(bills, 2024, time.March)
	if !totals.Total.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("Total = %s, want 60.00", totals.Total)
	}
	if !totals.Paid.IsZero() {
		t.Errorf("Paid = %s, want 0", totals.Paid)
	}
	if !totals.Unpaid.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("Unpaid = %s, want 60.00", totals.Unpaid)
	}
}
