package snapshot

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthside/duebook/internal/model"
)

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Members: []model.Member{
			{ID: "u1", Name: "You", Phone: "+15551234567"},
			{ID: "u2", Name: "Partner"},
		},
		Categories:   []string{"Home", "Internet", "Misc"},
		ReminderDays: 3,
		Recipients:   []string{"u1", "u2"},
		Bills: []model.Bill{
			{
				ID:           "b1",
				Title:        "Internet",
				Amount:       decimal.RequireFromString("60.00"),
				DueDate:      model.NewDate(2024, time.March, 16),
				Category:     "Internet",
				Notes:        "fiber plan",
				Paid:         false,
				CreatedBy:    "u1",
				ReminderDays: 3,
				Recipients:   []string{"u1", "u2"},
			},
			{
				ID:        "b2",
				Title:     "Rent",
				Amount:    decimal.RequireFromString("1200.00"),
				DueDate:   model.NewDate(2024, time.March, 1),
				Category:  "Home",
				Paid:      true,
				CreatedBy: "u1",
				PaidBy:    "u1",
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	original := testSnapshot()

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data, model.Snapshot{})
	require.NoError(t, err)

	assert.Equal(t, original.Members, decoded.Members)
	assert.Equal(t, original.Categories, decoded.Categories)
	assert.Equal(t, original.ReminderDays, decoded.ReminderDays)
	assert.Equal(t, original.Recipients, decoded.Recipients)
	require.Len(t, decoded.Bills, len(original.Bills))
	for i := range original.Bills {
		want, got := original.Bills[i], decoded.Bills[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Title, got.Title)
		assert.True(t, want.Amount.Equal(got.Amount), "amount %s != %s", want.Amount, got.Amount)
		assert.True(t, want.DueDate.Equal(got.DueDate.Time), "due %s != %s", want.DueDate, got.DueDate)
		assert.Equal(t, want.Paid, got.Paid)
		assert.Equal(t, want.PaidBy, got.PaidBy)
		assert.Equal(t, want.Recipients, got.Recipients)
	}
}

func TestDecodePartialDocument(t *testing.T) {
	current := testSnapshot()

	doc := []byte(`{"bills": [{"id": "b9", "title": "Water", "amount": "25.00", "dueISO": "2024-04-01", "category": "Utilities", "paid": false, "createdBy": "u2"}]}`)

	decoded, err := Decode(doc, current)
	require.NoError(t, err)

	// Only the bill collection is replaced.
	require.Len(t, decoded.Bills, 1)
	assert.Equal(t, "b9", decoded.Bills[0].ID)
	assert.Equal(t, current.Members, decoded.Members)
	assert.Equal(t, current.Categories, decoded.Categories)
	assert.Equal(t, current.ReminderDays, decoded.ReminderDays)
	assert.Equal(t, current.Recipients, decoded.Recipients)
}

func TestDecodeEmptyKeyDiffersFromAbsentKey(t *testing.T) {
	current := testSnapshot()

	decoded, err := Decode([]byte(`{"categories": []}`), current)
	require.NoError(t, err)
	assert.Empty(t, decoded.Categories)
	assert.Equal(t, current.Bills, decoded.Bills)
}

func TestDecodeMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid json", data: `{"bills": [`},
		{name: "wrong top-level shape", data: `["not", "an", "object"]`},
		{name: "wrong bills shape", data: `{"bills": {"id": "b1"}}`},
		{name: "wrong date shape", data: `{"bills": [{"id": "b1", "title": "x", "amount": "1", "dueISO": 20240316, "category": "Misc", "paid": false, "createdBy": "u1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := testSnapshot()
			before := current.Clone()

			_, err := Decode([]byte(tt.data), current)
			require.Error(t, err)

			// The input state must be untouched by a failed decode.
			assert.Equal(t, before, current)
		})
	}
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify([]byte(`{"bills": []}`)))
	assert.NoError(t, Verify([]byte(`{"members": [], "extraneous": true}`)))
	assert.Error(t, Verify([]byte(`{`)))
	assert.Error(t, Verify([]byte(`{"unrelated": 1}`)))
	assert.Error(t, Verify([]byte(`"just a string"`)))
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "duebook-2024-03-20.json", ExportFilename(now))
}
