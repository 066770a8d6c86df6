package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
)

func defaultsCmd() *cobra.Command {
	var (
		reminderDays int
		recipients   []string
	)

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show or change new-bill defaults",
		Long:  `Show the reminder lead and recipient defaults applied to new bills, or change them with flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			changed := false
			if cmd.Flags().Changed("reminder") {
				if err := s.SetReminderDays(ctx, reminderDays); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("recipients") {
				s.SetRecipients(ctx, recipients)
				changed = true
			}

			if changed {
				fmt.Println(cli.FormatSuccess("Defaults updated"))
			}
			fmt.Printf("Reminder lead: %d days\n", s.ReminderDays())
			names := make([]string, 0, len(s.Recipients()))
			for _, id := range s.Recipients() {
				names = append(names, memberName(s.Members(), id))
			}
			fmt.Printf("Recipients:    %s\n", strings.Join(names, ", "))
			return nil
		},
	}

	cmd.Flags().IntVar(&reminderDays, "reminder", 0, "default reminder lead in days")
	cmd.Flags().StringSliceVar(&recipients, "recipients", nil, "default recipient member IDs")

	return cmd
}
