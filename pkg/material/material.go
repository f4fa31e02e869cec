// Package material holds the fixed filament density table.
package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Density is a material density in grams per cubic centimeter.
type Density float64

// Filament densities for the supported materials.
const (
	PLA  Density = 1.24
	ABS  Density = 1.04
	PETG Density = 1.27
	TPU  Density = 1.21
)

// ErrUnknownMaterial is returned when a name is not in the density table.
var ErrUnknownMaterial = errors.New("material: unknown material")

// densities is process-wide immutable data; it is never written after
// initialization and safe to read concurrently.
var densities = map[string]Density{
	"pla":  PLA,
	"abs":  ABS,
	"petg": PETG,
	"tpu":  TPU,
}

// Lookup resolves a case-insensitive material name to its density.
func Lookup(name string) (Density, error) {
	d, ok := densities[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return d, nil
}

// Names returns the supported material names in sorted order.
func Names() []string {
	names := make([]string, 0, len(densities))
	for name := range densities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
