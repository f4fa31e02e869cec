package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printwise/stlweight/pkg/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List supported materials and their densities",
	Args:  cobra.NoArgs,
	Run:   runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println("Supported Materials")
	fmt.Println("===================")
	for _, name := range material.Names() {
		density, _ := material.Lookup(name)
		fmt.Printf("  %-5s %.2f g/cm³\n", name, float64(density))
	}
}
