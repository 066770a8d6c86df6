package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBill_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
		bill    Bill
	}{
		{
			name: "valid bill",
			bill: Bill{
				Title:  "Internet",
				Amount: decimal.RequireFromString("60.00"),
			},
		},
		{
			name: "zero amount is allowed",
			bill: Bill{
				Title:  "Free trial",
				Amount: decimal.Zero,
			},
		},
		{
			name:    "empty title",
			bill:    Bill{Amount: decimal.RequireFromString("60.00")},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "whitespace-only title",
			bill: Bill{
				Title:  "   \t ",
				Amount: decimal.RequireFromString("60.00"),
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "negative amount",
			bill: Bill{
				Title:  "Refund",
				Amount: decimal.RequireFromString("-1.00"),
			},
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bill.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 16)

	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2024-03-16"` {
		t.Errorf("MarshalJSON() = %s, want \"2024-03-16\"", data)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip produced %v, want %v", parsed, d)
	}

	if err := parsed.UnmarshalJSON([]byte(`20240316`)); err == nil {
		t.Error("UnmarshalJSON() accepted an unquoted value")
	}
	if err := parsed.UnmarshalJSON([]byte(`"March 16"`)); err == nil {
		t.Error("UnmarshalJSON() accepted a malformed date")
	}
}

func TestDateSameDay(t *testing.T) {
	d := NewDate(2024, time.March, 16)

	late := time.Date(2024, time.March, 16, 23, 59, 0, 0, time.FixedZone("PST", -8*3600))
	if !d.SameDay(late) {
		t.Error("SameDay() ignored only the time of day, want true")
	}
	if d.SameDay(time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)) {
		t.Error("SameDay() matched a different day")
	}
}
