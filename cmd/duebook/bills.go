package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/model"
	"github.com/hearthside/duebook/internal/report"
)

func addCmd() *cobra.Command {
	var (
		amountStr    string
		dueStr       string
		category     string
		notes        string
		reminderDays int
		recipients   []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			due := model.DateOf(time.Now())
			if dueStr != "" {
				if due, err = model.ParseDate(dueStr); err != nil {
					return err
				}
			}

			// Defaults are filled here, before the store sees the bill.
			if category == "" {
				category = "Misc"
			}
			if !cmd.Flags().Changed("reminder") {
				reminderDays = s.ReminderDays()
			}
			if len(recipients) == 0 {
				recipients = s.Recipients()
			}
			createdBy := ""
			if members := s.Members(); len(members) > 0 {
				createdBy = members[0].ID
			}

			bill := model.Bill{
				ID:           uuid.NewString(),
				Title:        args[0],
				Amount:       amount,
				DueDate:      due,
				Category:     category,
				Notes:        notes,
				CreatedBy:    createdBy,
				ReminderDays: reminderDays,
				Recipients:   recipients,
			}

			if err := s.Add(ctx, bill); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (%s) due %s", bill.Title, bill.Amount.StringFixed(2), bill.DueDate)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "bill amount (required)")
	cmd.Flags().StringVarP(&dueStr, "due", "d", "", "due date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label (default Misc)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().IntVar(&reminderDays, "reminder", 0, "reminder lead in days (default from settings)")
	cmd.Flags().StringSliceVar(&recipients, "recipients", nil, "recipient member IDs (default from settings)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		monthStr string
		query    string
		overdue  bool
		upcoming bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Long:  `List bills, optionally scoped to a month, a search query, or the overdue/upcoming partition.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			bills := report.Filter(s.Bills(), query)

			switch {
			case overdue:
				bills, _ = report.Partition(bills, time.Now())
			case upcoming:
				_, bills = report.Partition(bills, time.Now())
			case monthStr != "":
				year, month, err := parseMonth(monthStr)
				if err != nil {
					return err
				}
				var scoped []model.Bill
				for _, b := range bills {
					if b.DueDate.InMonth(year, month) {
						scoped = append(scoped, b)
					}
				}
				bills = scoped
			}

			if len(bills) == 0 {
				fmt.Println("No bills found.")
				return nil
			}
			printBills(cmd.OutOrStdout(), bills, s.Members())
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthStr, "month", "m", "", "restrict to a month (YYYY-MM)")
	cmd.Flags().StringVarP(&query, "search", "s", "", "search query")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "only unpaid bills past due")
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only unpaid bills due today or later")
	cmd.MarkFlagsMutuallyExclusive("overdue", "upcoming", "month")

	return cmd
}

func payCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Toggle a bill's paid status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			bill, err := findBill(s.Bills(), args[0])
			if err != nil {
				return err
			}

			toggled, err := s.TogglePaid(ctx, bill.ID)
			if err != nil {
				return err
			}

			if toggled.Paid {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Marked %q paid by %s", toggled.Title, memberName(s.Members(), toggled.PaidBy))))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Marked %q unpaid", toggled.Title)))
			}
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			bill, err := findBill(s.Bills(), args[0])
			if err != nil {
				return err
			}

			if !force && !confirm(fmt.Sprintf("Delete %q (%s)?", bill.Title, bill.Amount.StringFixed(2))) {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			s.Delete(ctx, bill.ID)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %q", bill.Title)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")

	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search bills by title, category and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			bills := report.Filter(s.Bills(), args[0])
			if len(bills) == 0 {
				fmt.Printf("No bills match %q.\n", args[0])
				return nil
			}
			printBills(cmd.OutOrStdout(), bills, s.Members())
			return nil
		},
	}
}
