package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/stages"
)

var platesCmd = &cobra.Command{
	Use:   "plates",
	Short: "Print the plate build order for a halftone mode",
	RunE:  runPlates,
}

func init() {
	platesCmd.Flags().String("mode", "cmyk", "Halftone mode: bw, duotone, or cmyk")
	platesCmd.Flags().String("laydown", "k-c-m-y", "Print laydown order")
	platesCmd.Flags().Int("master-angle", 0, "Master screen angle offset in degrees")
	rootCmd.AddCommand(platesCmd)
}

func runPlates(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	laydown, _ := cmd.Flags().GetString("laydown")
	masterAngle, _ := cmd.Flags().GetInt("master-angle")

	bundle := params.Bundle{
		"halftone": {"mode": mode, "masterAngle": masterAngle},
	}
	cfg, err := params.Resolve(bundle, params.Active{})
	if err != nil {
		return fmt.Errorf("resolving halftone params: %w", err)
	}

	infos := stages.DescribePlates(cfg.Halftone, cfg.Registration, laydown)

	fmt.Printf("Mode: %s   Laydown: %s\n", mode, laydown)
	fmt.Printf("%-6s %-8s %-8s %-10s %-8s %-8s %-8s\n", "letter", "pre-sort", "render#", "ink", "angle", "offX", "offY")
	for _, p := range infos {
		fmt.Printf("%-6c %-8d %-8d %-10s %-8.1f %-8.2f %-8.2f\n",
			p.Letter, p.PreSortIdx, p.RenderOrder, p.Ink, p.Angle, p.OffsetX, p.OffsetY)
	}
	return nil
}
