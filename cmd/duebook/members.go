package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/model"
)

func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage household members",
	}

	cmd.AddCommand(listMembersCmd())
	cmd.AddCommand(addMemberCmd())
	cmd.AddCommand(removeMemberCmd())

	return cmd
}

func listMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List household members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			members := s.Members()
			if len(members) == 0 {
				fmt.Println("No members. Use 'duebook members add' to create one.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer tw.Flush()
			fmt.Fprintln(tw, "ID\tNAME\tPHONE")
			for _, m := range members {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Name, m.Phone)
			}
			return nil
		},
	}
}

func addMemberCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a household member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			member := model.Member{
				ID:    uuid.NewString(),
				Name:  args[0],
				Phone: phone,
			}
			if err := s.AddMember(ctx, member); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added member %q (%s)", member.Name, member.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")

	return cmd
}

func removeMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a household member",
		Long:  `Remove a member. Bills referencing the member keep their references.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if !s.RemoveMember(ctx, args[0]) {
				return fmt.Errorf("member %q not found", args[0])
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed member %s", args[0])))
			return nil
		},
	}
}
