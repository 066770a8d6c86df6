package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/report"
)

func totalsCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show month totals",
		Long:  `Show the total, paid and unpaid amounts for the bills due in one month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			year, month, err := parseMonth(monthStr)
			if err != nil {
				return err
			}

			totals := report.MonthTotals(s.Bills(), year, month)
			label := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

			fmt.Println(cli.FormatTitle(label))
			fmt.Printf("  Total:  %s\n", totals.Total.StringFixed(2))
			fmt.Printf("  Paid:   %s\n", cli.SuccessStyle.Render(totals.Paid.StringFixed(2)))
			fmt.Printf("  Unpaid: %s\n", cli.WarningStyle.Render(totals.Unpaid.StringFixed(2)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthStr, "month", "m", "", "month to total (YYYY-MM, default current)")

	return cmd
}
