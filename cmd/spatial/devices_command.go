package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spatial/internal/device"
	"spatial/internal/watch"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List candidate physical output devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			out := cmd.OutOrStdout()
			catalog := device.NewCatalog(logger)

			printListing := func() error {
				devices, err := catalog.Enumerate(cmd.Context())
				if errors.Is(err, device.ErrNoDevices) {
					fmt.Fprintln(out, "No output devices found.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, renderDeviceTable(devices))
				return nil
			}

			if err := printListing(); err != nil {
				return err
			}
			if !watchFlag {
				return nil
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Coalesce: one pending refresh is enough, the listing is
			// re-enumerated from scratch anyway.
			events := make(chan watch.Event, 1)
			monitor := watch.New(logger, func(ev watch.Event) {
				select {
				case events <- ev:
				default:
				}
			})
			if err := monitor.Start(sigCtx); err != nil {
				return fmt.Errorf("starting udev monitor: %w", err)
			}
			defer monitor.Stop()

			fmt.Fprintln(out, "Watching for sound device changes (Ctrl-C to stop)...")
			for {
				select {
				case <-sigCtx.Done():
					fmt.Fprintln(out)
					return nil
				case ev := <-events:
					fmt.Fprintf(out, "\nDevice %s: %s\n", ev.Action, ev.KObj)
					if err := printListing(); err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Keep running and refresh on hotplug events")
	return cmd
}
