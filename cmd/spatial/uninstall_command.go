package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spatial/internal/installer"
)

func newUninstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the spatial audio sink and its impulse response copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			journal := ctx.openJournal(cfg)
			var manager *installer.Manager
			if journal != nil {
				defer journal.Close()
				manager, err = ctx.newManager(cfg, journal)
			} else {
				manager, err = ctx.newManager(cfg, nil)
			}
			if err != nil {
				return err
			}

			state, err := manager.State()
			if err != nil {
				return err
			}
			if err := manager.Uninstall(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if state == installer.StateAbsent {
				fmt.Fprintln(out, "Nothing installed; nothing to do.")
				return nil
			}
			fmt.Fprintln(out, "Spatial audio sink removed.")
			return nil
		},
	}
}
