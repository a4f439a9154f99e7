package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkgrain/pressline/internal/filmstock"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List available film stocks",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	for _, id := range filmstock.IDs() {
		s := filmstock.Lookup(id)
		kind := "color"
		if s.BW {
			kind = "b&w"
		}
		fmt.Printf("%-12s %-6s saturation=%.2f halation(radius=%d strength=%.2f tint=%s)\n",
			s.ID, kind, s.Saturation, s.Halation.Radius, s.Halation.Strength, s.Halation.Tint)
	}
	return nil
}
