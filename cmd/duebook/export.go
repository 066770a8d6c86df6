package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthside/duebook/internal/cli"
	"github.com/hearthside/duebook/internal/snapshot"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the full snapshot to a JSON file",
		Long:  `Write the complete application state (members, categories, defaults, bills) to a pretty-printed JSON file. The default file name carries today's date.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			path := snapshot.ExportFilename(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			data, err := snapshot.Encode(s.Snapshot())
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d bills to %s", len(s.Bills()), path)))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a snapshot from a JSON file",
		Long: `Merge a previously exported JSON document into the current state.
Only the top-level keys present in the file are applied; the rest of the
state keeps its current values. A malformed file changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			if err := snapshot.Verify(data); err != nil {
				return fmt.Errorf("invalid file: %w", err)
			}

			merged, err := snapshot.Decode(data, s.Snapshot())
			if err != nil {
				return fmt.Errorf("invalid file: %w", err)
			}

			if !force && !confirm(fmt.Sprintf("Replace current data with %s?", args[0])) {
				fmt.Println("Import cancelled.")
				return nil
			}

			s.Replace(ctx, merged)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %s: %d bills, %d members", args[0], len(s.Bills()), len(s.Members()))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")

	return cmd
}
