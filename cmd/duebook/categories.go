package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage bill categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(removeCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, c := range s.Categories() {
				fmt.Println(c)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := s.AddCategory(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %q", args[0])))
			return nil
		},
	}
}

func removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category",
		Long:  `Remove a category label. Bills already using the label keep it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if !s.RemoveCategory(ctx, args[0]) {
				return fmt.Errorf("category %q not found", args[0])
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed category %q", args[0])))
			return nil
		},
	}
}
