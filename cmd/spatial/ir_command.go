package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"spatial/internal/ir"
)

func newIRCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ir",
		Short: "Work with impulse response assets",
	}
	cmd.AddCommand(newIRGenCommand(ctx))
	return cmd
}

func newIRGenCommand(ctx *commandContext) *cobra.Command {
	var intensityFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the impulse response asset for an intensity preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			preset, err := ir.ParsePreset(firstNonEmpty(intensityFlag, cfg.Sink.Intensity))
			if err != nil {
				return err
			}

			output := outputFlag
			if output == "" {
				output = filepath.Join(cfg.Paths.AssetDir, preset.AssetFileName())
			}
			if err := ir.Generate(preset, output); err != nil {
				return err
			}

			info, err := os.Stat(output)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", output)
			fmt.Fprintf(out, "  preset:   %s\n", preset)
			fmt.Fprintf(out, "  channels: %d\n", ir.NumChannels)
			fmt.Fprintf(out, "  rate:     %d Hz\n", ir.SampleRate)
			fmt.Fprintf(out, "  length:   %s (%d samples)\n",
				time.Duration(ir.NumSamples)*time.Second/time.Duration(ir.SampleRate), ir.NumSamples)
			fmt.Fprintf(out, "  size:     %d bytes\n", info.Size())
			return nil
		},
	}

	cmd.Flags().StringVarP(&intensityFlag, "intensity", "i", "", "Spatial effect intensity: light, medium, or heavy")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (defaults to the configured asset directory)")
	return cmd
}
