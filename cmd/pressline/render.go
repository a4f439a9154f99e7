package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a PNG source through the pipeline",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("input", "i", "", "Input PNG file")
	renderCmd.Flags().StringP("output", "o", "", "Output PNG file")
	renderCmd.Flags().String("active", "filmstock,grain,halftone,inkbleed,paper", "Comma-separated active module ids")
	renderCmd.Flags().String("params", "", "Path to a JSON parameter bundle (module id -> param id -> value)")
	renderCmd.Flags().Bool("export", true, "forExport: use the export (upscale) resample path instead of preview")
	renderCmd.Flags().Int("preview-max", 1024, "previewMaxPx for the preview resample path")
	renderCmd.Flags().Int("upscale", 1, "integer upscale factor for the export resample path")
	renderCmd.MarkFlagRequired("input")
	renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	activeStr, _ := cmd.Flags().GetString("active")
	paramsPath, _ := cmd.Flags().GetString("params")
	forExport, _ := cmd.Flags().GetBool("export")
	previewMax, _ := cmd.Flags().GetInt("preview-max")
	upscale, _ := cmd.Flags().GetInt("upscale")

	src, err := loadPNG(inputPath)
	if err != nil {
		return err
	}

	active := params.Active{}
	for _, id := range strings.Split(activeStr, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			active[id] = true
		}
	}

	bundle := params.Bundle{}
	if paramsPath != "" {
		data, err := os.ReadFile(paramsPath)
		if err != nil {
			return fmt.Errorf("reading params: %w", err)
		}
		if err := json.Unmarshal(data, &bundle); err != nil {
			return fmt.Errorf("parsing params: %w", err)
		}
	}

	result, err := pipeline.Run(src, active, bundle, pipeline.Options{
		ForExport:    forExport,
		PreviewMaxPx: previewMax,
		Upscale:      upscale,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := savePNG(outputPath, result); err != nil {
		return err
	}

	fmt.Printf("Rendered %dx%d -> %dx%d\n", src.Width, src.Height, result.Width, result.Height)
	fmt.Printf("Output: %s\n", outputPath)
	return nil
}
