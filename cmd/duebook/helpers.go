package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/viper"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/config"
	"github.com/hearthside/duebook/internal/model"
	"github.com/hearthside/duebook/internal/storage"
	"github.com/hearthside/duebook/internal/store"
)

// openStore opens the snapshot database from the configured path and
// restores the store from it. The returned cleanup closes the database.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	path := config.ExpandPath(viper.GetString("storage.path"))
	if path == "" {
		path = config.DefaultStoragePath()
	}

	db, err := storage.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	s := store.Open(ctx, db)
	return s, func() { _ = db.Close() }, nil
}

// parseMonth parses a YYYY-MM month argument, defaulting to the current
// month when empty.
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// memberName resolves a member ID to a display name, falling back to the
// raw ID for dangling references.
func memberName(members []model.Member, id string) string {
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

// printBills writes a bill table.
func printBills(w io.Writer, bills []model.Bill, members []model.Member) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tDUE\tTITLE\tCATEGORY\tAMOUNT\tSTATUS")
	for _, b := range bills {
		status := "unpaid"
		if b.Paid {
			status = "paid by " + memberName(members, b.PaidBy)
		}
		id := b.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			id, b.DueDate, b.Title, b.Category, b.Amount.StringFixed(2), status)
	}
}

// findBill resolves a possibly abbreviated bill ID. Exactly one bill
// must match the prefix.
func findBill(bills []model.Bill, id string) (model.Bill, error) {
	var matches []model.Bill
	for _, b := range bills {
		if b.ID == id {
			return b, nil
		}
		if strings.HasPrefix(b.ID, id) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Bill{}, fmt.Errorf("no bill matches %q", id)
	default:
		return model.Bill{}, fmt.Errorf("%d bills match %q, be more specific", len(matches), id)
	}
}

// confirm prompts for a y/N answer.
func confirm(prompt string) bool {
	fmt.Print(cli.FormatWarning(prompt) + " (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	return strings.EqualFold(strings.TrimSpace(response), "y")
}
