package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent install and uninstall operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limitFlag < 1 {
				return fmt.Errorf("invalid --limit %d: must be at least 1", limitFlag)
			}

			journal := ctx.openJournal(cfg)
			if journal == nil {
				return errors.New("history journal unavailable")
			}
			defer journal.Close()

			entries, err := journal.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No operations recorded yet.")
				return nil
			}
			fmt.Fprintln(out, renderHistoryTable(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 20, "Maximum number of entries to show")
	return cmd
}
