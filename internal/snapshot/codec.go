// Package snapshot encodes and decodes the persisted application state.
// The same document shape serves the local snapshot store and manual
// export/import.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hearthside/duebook/internal/model"
)

// document mirrors model.Snapshot with optional fields so a decode can
// tell an absent key from an empty one.
type document struct {
	Members      *[]model.Member `json:"members"`
	Categories   *[]string       `json:"categories"`
	ReminderDays *int            `json:"reminderDays"`
	Recipients   *[]string       `json:"recipients"`
	Bills        *[]model.Bill   `json:"bills"`
}

// Encode serializes the snapshot as a pretty-printed JSON document.
func Encode(s model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode applies a snapshot document on top of current and returns the
// result. Each top-level key is applied only if present, so a document
// holding just bills replaces the bill collection and leaves members,
// categories and defaults untouched. Any parse or shape error fails the
// whole decode; current is never modified.
func Decode(data []byte, current model.Snapshot) (model.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	out := current.Clone()
	if doc.Members != nil {
		out.Members = *doc.Members
	}
	if doc.Categories != nil {
		out.Categories = *doc.Categories
	}
	if doc.ReminderDays != nil {
		out.ReminderDays = *doc.ReminderDays
	}
	if doc.Recipients != nil {
		out.Recipients = *doc.Recipients
	}
	if doc.Bills != nil {
		out.Bills = *doc.Bills
	}
	return out, nil
}

// Verify reports whether data looks like a snapshot document: valid JSON
// with at least one recognized top-level key. This is a presence check
// only, matching the loose import acceptance of the UI; deep validation
// happens implicitly in Decode.
func Verify(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse snapshot document: %w", err)
	}
	if doc.Members == nil && doc.Categories == nil && doc.ReminderDays == nil &&
		doc.Recipients == nil && doc.Bills == nil {
		return fmt.Errorf("document contains no snapshot keys")
	}
	return nil
}

// ExportFilename returns the dated name for a manual export file.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("duebook-%s.json", now.Format("2006-01-02"))
}
