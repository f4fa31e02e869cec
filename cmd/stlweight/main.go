package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/stlweight/version"
)

var rootCmd = &cobra.Command{
	Use:   "stlweight",
	Short: "Estimate the printed weight of STL models",
	Long: `stlweight estimates how much a 3D print will weigh. It parses STL files
(both ASCII and binary), computes the enclosed mesh volume, rescales it to the
requested dimensions and converts the result to grams for a given material
and infill percentage.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
