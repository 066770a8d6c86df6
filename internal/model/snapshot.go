package model

import "slices"

// Snapshot is the complete serializable application state: the household
// members, the category list, the reminder and recipient defaults applied
// to new bills, and every bill. It is the unit of persistence and of
// export/import.
type Snapshot struct {
	Members      []Member `json:"members"`
	Categories   []string `json:"categories"`
	ReminderDays int      `json:"reminderDays"`
	Recipients   []string `json:"recipients"`
	Bills        []Bill   `json:"bills"`
}

// DefaultReminderDays is the reminder lead applied to new bills when the
// user has not chosen one.
const DefaultReminderDays = 3

// DefaultCategories returns the seed category list.
func DefaultCategories() []string {
	return []string{
		"Home", "Car", "Utilities", "Internet", "Phone", "Insurance",
		"Credit Card", "Loan", "Investment", "Medical", "Subscription",
		"Groceries", "Misc",
	}
}

// DefaultMembers returns the seed household.
func DefaultMembers() []Member {
	return []Member{
		{ID: "u1", Name: "You", Phone: "+15551234567"},
		{ID: "u2", Name: "Partner", Phone: "+15557654321"},
	}
}

// DefaultSnapshot returns the state used when no persisted snapshot
// exists: the seed household and categories, the default reminder lead,
// and every member as a default recipient.
func DefaultSnapshot() Snapshot {
	members := DefaultMembers()
	recipients := make([]string, 0, len(members))
	for _, m := range members {
		recipients = append(recipients, m.ID)
	}
	return Snapshot{
		Members:      members,
		Categories:   DefaultCategories(),
		ReminderDays: DefaultReminderDays,
		Recipients:   recipients,
		Bills:        []Bill{},
	}
}

// Clone returns a deep copy of the snapshot. Bill recipient slices are
// copied as well so callers cannot alias store-owned state.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Members = slices.Clone(s.Members)
	out.Categories = slices.Clone(s.Categories)
	out.Recipients = slices.Clone(s.Recipients)
	out.Bills = slices.Clone(s.Bills)
	for i := range out.Bills {
		out.Bills[i].Recipients = slices.Clone(out.Bills[i].Recipients)
	}
	return out
}
