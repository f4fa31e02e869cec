package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/stlweight/pkg/analysis"
	"github.com/printwise/stlweight/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometric information about an STL file",
	Long:  "Show dimensions, triangle count, enclosed volume, surface area, and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f mm²\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f mm\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f mm\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f mm\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f mm\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Enclosed Volume: %.6f mm³\n\n", result.Volume)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f mm\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f mm\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f mm\n", result.AvgEdgeLength)
}
