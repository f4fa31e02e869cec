package weight

import (
	"github.com/printwise/stlweight/pkg/analysis"
	"github.com/printwise/stlweight/pkg/material"
	"github.com/printwise/stlweight/pkg/stl"
)

// DefaultMaterial is assumed when a request does not name a material.
const DefaultMaterial = "pla"

// Request carries the parameters for a weight estimate. Target dimensions
// are millimeters.
type Request struct {
	TargetX, TargetY, TargetZ float64
	InfillPercent             float64
	Material                  string // empty means DefaultMaterial
	ShellModel                bool
}

// Estimate runs the full pipeline: decode the STL buffer, measure its
// enclosed volume and bounding box, rescale to the target dimensions and
// convert to grams. It is a pure computation; concurrent calls are safe.
func Estimate(data []byte, req Request) (float64, error) {
	name := req.Material
	if name == "" {
		name = DefaultMaterial
	}
	density, err := material.Lookup(name)
	if err != nil {
		return 0, err
	}

	model, err := stl.Decode(data)
	if err != nil {
		return 0, err
	}

	volume, bbox := analysis.MeshVolume(model)

	factor, err := ScaleFactor(bbox, req.TargetX, req.TargetY, req.TargetZ)
	if err != nil {
		return 0, err
	}

	var opts []Option
	if req.ShellModel {
		opts = append(opts, WithShellModel())
	}
	return Grams(volume*factor, req.InfillPercent, density, opts...)
}
