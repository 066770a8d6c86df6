// Package store owns the in-memory application state and is the only
// place it is mutated. Every successful mutation is persisted
// best-effort through the injected Persister; a failed save is logged
// and never fails the mutation, since the in-memory state stays correct
// for the rest of the session.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hearthside/duebook/internal/model"
)

// Persister saves and restores the application snapshot.
type Persister interface {
	// Load returns the persisted snapshot, or nil when none exists.
	Load(ctx context.Context) (*model.Snapshot, error)
	// Save replaces the persisted snapshot.
	Save(ctx context.Context, s model.Snapshot) error
}

// Store holds the application snapshot. It is not safe for concurrent
// use; there is exactly one writer, the UI event loop.
type Store struct {
	persister Persister
	snap      model.Snapshot
}

// New creates a store over the given snapshot.
func New(snap model.Snapshot, p Persister) *Store {
	return &Store{snap: snap.Clone(), persister: p}
}

// Open loads the persisted snapshot through p, falling back to the
// default seed state when nothing is persisted or the load fails. A load
// failure is logged and otherwise ignored so a corrupt snapshot never
// prevents startup.
func Open(ctx context.Context, p Persister) *Store {
	snap := model.DefaultSnapshot()
	if p != nil {
		loaded, err := p.Load(ctx)
		switch {
		case err != nil:
			slog.Warn("failed to load snapshot, starting from defaults", "error", err)
		case loaded != nil:
			snap = *loaded
		}
	}
	return New(snap, p)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	return s.snap.Clone()
}

// Bills returns a copy of the bill collection.
func (s *Store) Bills() []model.Bill {
	return slices.Clone(s.snap.Bills)
}

// Members returns a copy of the household members.
func (s *Store) Members() []model.Member {
	return slices.Clone(s.snap.Members)
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []string {
	return slices.Clone(s.snap.Categories)
}

// ReminderDays returns the default reminder lead for new bills.
func (s *Store) ReminderDays() int {
	return s.snap.ReminderDays
}

// Recipients returns the default recipient member IDs for new bills.
func (s *Store) Recipients() []string {
	return slices.Clone(s.snap.Recipients)
}

// Bill returns the bill with the given ID.
func (s *Store) Bill(id string) (model.Bill, bool) {
	for _, b := range s.snap.Bills {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

// Add appends a fully formed bill. Field defaulting (ID, category,
// reminder lead, recipients) is the caller's responsibility. The store
// is unchanged when validation fails.
func (s *Store) Add(ctx context.Context, b model.Bill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.snap.Bills = append(s.snap.Bills, b)
	s.persist(ctx)
	return nil
}

// Upsert replaces the bill with a matching ID, or inserts the bill when
// no match exists. The silent insert is deliberate, not an error path.
func (s *Store) Upsert(ctx context.Context, b model.Bill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	for i := range s.snap.Bills {
		if s.snap.Bills[i].ID == b.ID {
			s.snap.Bills[i] = b
			s.persist(ctx)
			return nil
		}
	}
	s.snap.Bills = append(s.snap.Bills, b)
	s.persist(ctx)
	return nil
}

// TogglePaid flips a bill's paid flag. Transitioning to paid stamps the
// first household member as the payer; transitioning back to unpaid
// clears the payer, so paid=false always implies an absent payer.
func (s *Store) TogglePaid(ctx context.Context, id string) (model.Bill, error) {
	for i := range s.snap.Bills {
		if s.snap.Bills[i].ID != id {
			continue
		}
		b := &s.snap.Bills[i]
		b.Paid = !b.Paid
		if b.Paid {
			if len(s.snap.Members) > 0 {
				b.PaidBy = s.snap.Members[0].ID
			}
		} else {
			b.PaidBy = ""
		}
		s.persist(ctx)
		return *b, nil
	}
	return model.Bill{}, fmt.Errorf("bill %q not found", id)
}

// Delete removes a bill by ID and reports whether anything was removed.
// User confirmation happens in the calling layer.
func (s *Store) Delete(ctx context.Context, id string) bool {
	for i := range s.snap.Bills {
		if s.snap.Bills[i].ID == id {
			s.snap.Bills = slices.Delete(s.snap.Bills, i, i+1)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddMember appends a household member.
func (s *Store) AddMember(ctx context.Context, m model.Member) error {
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("member id and name are required")
	}
	for _, existing := range s.snap.Members {
		if existing.ID == m.ID {
			return fmt.Errorf("member %q already exists", m.ID)
		}
	}
	s.snap.Members = append(s.snap.Members, m)
	s.persist(ctx)
	return nil
}

// RemoveMember removes a member by ID. Bills referencing the member keep
// their references; dangling references are tolerated everywhere.
func (s *Store) RemoveMember(ctx context.Context, id string) bool {
	for i := range s.snap.Members {
		if s.snap.Members[i].ID == id {
			s.snap.Members = slices.Delete(s.snap.Members, i, i+1)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// AddCategory appends a category label, keeping the list deduplicated.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if slices.Contains(s.snap.Categories, name) {
		return fmt.Errorf("category %q already exists", name)
	}
	s.snap.Categories = append(s.snap.Categories, name)
	s.persist(ctx)
	return nil
}

// RemoveCategory removes a category label. Bills already using the label
// keep it.
func (s *Store) RemoveCategory(ctx context.Context, name string) bool {
	i := slices.Index(s.snap.Categories, name)
	if i < 0 {
		return false
	}
	s.snap.Categories = slices.Delete(s.snap.Categories, i, i+1)
	s.persist(ctx)
	return true
}

// SetReminderDays sets the default reminder lead for new bills.
func (s *Store) SetReminderDays(ctx context.Context, days int) error {
	if days < 0 {
		return fmt.Errorf("reminder days must not be negative")
	}
	s.snap.ReminderDays = days
	s.persist(ctx)
	return nil
}

// SetRecipients sets the default recipient member IDs for new bills.
func (s *Store) SetRecipients(ctx context.Context, ids []string) {
	s.snap.Recipients = slices.Clone(ids)
	s.persist(ctx)
}

// Replace swaps in a whole new snapshot, used by import.
func (s *Store) Replace(ctx context.Context, snap model.Snapshot) {
	s.snap = snap.Clone()
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.snap); err != nil {
		slog.Warn("failed to persist snapshot", "error", err, "bills", len(s.snap.Bills))
	}
}
