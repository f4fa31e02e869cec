package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/stlweight/pkg/weight"
)

var (
	targetX, targetY, targetZ float64
	infillPercent             float64
	materialName              string
	shellModel                bool
	jsonOutput                bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Estimate the printed weight of an STL file",
	Long: `Estimate the weight in grams of an STL model printed at the given target
dimensions, infill percentage and material. The model is rescaled per axis so
that its bounding box matches the target dimensions exactly.`,
	Args: cobra.ExactArgs(1),
	Run:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().Float64Var(&targetX, "x", 0.0, "target X dimension in mm")
	estimateCmd.Flags().Float64Var(&targetY, "y", 0.0, "target Y dimension in mm")
	estimateCmd.Flags().Float64Var(&targetZ, "z", 0.0, "target Z dimension in mm")
	estimateCmd.Flags().Float64Var(&infillPercent, "infill", 20.0, "infill percentage (0-100)")
	estimateCmd.Flags().StringVar(&materialName, "material", "pla", "material: pla, abs, petg or tpu")
	estimateCmd.Flags().BoolVar(&shellModel, "shell", false, "treat walls and top/bottom layers as solid")
	estimateCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")

	_ = estimateCmd.MarkFlagRequired("x")
	_ = estimateCmd.MarkFlagRequired("y")
	_ = estimateCmd.MarkFlagRequired("z")
}

func runEstimate(cmd *cobra.Command, args []string) {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading STL file: %v\n", err)
		os.Exit(1)
	}

	grams, err := weight.Estimate(data, weight.Request{
		TargetX:       targetX,
		TargetY:       targetY,
		TargetZ:       targetZ,
		InfillPercent: infillPercent,
		Material:      materialName,
		ShellModel:    shellModel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		out, _ := json.Marshal(map[string]string{
			"weight_grams": fmt.Sprintf("%.2f", grams),
		})
		fmt.Println(string(out))
		return
	}

	fmt.Printf("Estimated weight: %.2f g\n", grams)
	fmt.Printf("  Dimensions: %g x %g x %g mm\n", targetX, targetY, targetZ)
	fmt.Printf("  Infill:     %g%%\n", infillPercent)
	fmt.Printf("  Material:   %s\n", materialName)
}
