package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spatial/internal/installer"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current installation state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			manager, err := ctx.newManager(cfg, nil)
			if err != nil {
				return err
			}

			state, err := manager.State()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State:  %s\n", state)
			fmt.Fprintf(out, "Config: %s\n", manager.ConfPath())
			fmt.Fprintf(out, "Asset:  %s\n", manager.AssetPath())
			if state == installer.StatePartial {
				fmt.Fprintln(out, "Only one artifact is present; run `spatial install` or `spatial uninstall` to converge.")
			}

			if journal := ctx.openJournal(cfg); journal != nil {
				defer journal.Close()
				entries, err := journal.Recent(cmd.Context(), 1)
				if err == nil && len(entries) == 1 {
					e := entries[0]
					fmt.Fprintf(out, "Last operation: %s", e.Operation)
					if e.Preset != "" {
						fmt.Fprintf(out, " (%s, %s)", e.Preset, e.DeviceID)
					}
					if !e.CreatedAt.IsZero() {
						fmt.Fprintf(out, " at %s", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}
