package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"spatial/internal/device"
	"spatial/internal/graph"
	"spatial/internal/installer"
	"spatial/internal/ir"
	"spatial/internal/pwconf"
)

func newInstallCommand(ctx *commandContext) *cobra.Command {
	var intensityFlag string
	var deviceFlag string
	var nameFlag string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the spatial audio sink for a physical output device",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			out := cmd.OutOrStdout()

			preset, err := ir.ParsePreset(firstNonEmpty(intensityFlag, cfg.Sink.Intensity))
			if err != nil {
				return err
			}

			// Fatal checks come before any artifact mutation: the asset is
			// loaded and the configuration rendered up front, so a failure
			// never leaves a half-written install behind.
			assetSource := filepath.Join(cfg.Paths.AssetDir, preset.AssetFileName())
			assetBytes, err := installer.ReadAsset(assetSource)
			if errors.Is(err, installer.ErrAssetMissing) {
				return fmt.Errorf("%w\nGenerate it with `spatial ir gen --intensity %s`, or place the file at %s",
					err, preset, assetSource)
			}
			if err != nil {
				return err
			}

			catalog := device.NewCatalog(logger)
			selector := newPromptSelector(cmd.InOrStdin(), out)
			explicitID := firstNonEmpty(deviceFlag, cfg.Sink.DeviceID)
			dev, err := device.Resolve(cmd.Context(), explicitID, catalog, selector, logger)
			switch {
			case errors.Is(err, device.ErrNoDevices):
				return fmt.Errorf("%w\nPass --device <id> to target a sink the discovery backends cannot see", err)
			case errors.Is(err, device.ErrSelectionRequired):
				return fmt.Errorf("%w; re-run with --device <id> or from an interactive terminal", err)
			case err != nil:
				return err
			}

			displayName := firstNonEmpty(nameFlag, cfg.Sink.DisplayName)

			g, err := graph.Build(preset, cfg.InstalledAssetPath())
			if err != nil {
				return err
			}
			gen := pwconf.NewGeneration()
			confText, err := pwconf.Render(g, dev.ID, displayName, ir.SampleRate, gen)
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

			if err := manager.Install(cmd.Context(), installer.InstallRequest{
				ConfText:   confText,
				Asset:      assetBytes,
				Preset:     preset.String(),
				DeviceID:   dev.ID,
				Generation: gen.ID,
			}); err != nil {
				return err
			}

			fmt.Fprintf(out, "Installed %q (%s intensity) targeting %s\n", displayName, preset, dev.ID)
			fmt.Fprintf(out, "  config: %s\n", manager.ConfPath())
			fmt.Fprintf(out, "  asset:  %s\n", manager.AssetPath())
			fmt.Fprintln(out, "Select the new sink as the default output to hear the effect.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&intensityFlag, "intensity", "i", "", "Spatial effect intensity: light, medium, or heavy")
	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Target device id (skips discovery)")
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Display name for the virtual sink")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
