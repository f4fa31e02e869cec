package weight

import (
	"errors"
	"fmt"

	"github.com/printwise/stlweight/pkg/geometry"
)

// ErrInvalidTarget is returned when a requested dimension is not positive.
var ErrInvalidTarget = errors.New("weight: target dimensions must be positive")

// DegenerateAxisError reports a mesh with zero extent along an axis; a flat
// mesh cannot be rescaled to a non-zero target on that axis.
type DegenerateAxisError struct {
	Axis geometry.Axis
}

func (e *DegenerateAxisError) Error() string {
	return fmt.Sprintf("weight: mesh has zero extent along the %s axis", e.Axis)
}

// ScaleFactor computes the volume scale factor that maps the mesh bounding
// box onto the target dimensions (millimeters, each > 0).
//
// The factor is the product of the three independent per-axis linear scale
// factors, not the cube of a single one: stretching an object 2x along X
// alone doubles its volume.
func ScaleFactor(bbox geometry.BoundingBox, targetX, targetY, targetZ float64) (float64, error) {
	targets := [3]float64{targetX, targetY, targetZ}

	for i, axis := range geometry.Axes {
		if targets[i] <= 0 {
			return 0, fmt.Errorf("%w: %s dimension %g", ErrInvalidTarget, axis, targets[i])
		}
	}

	factor := 1.0
	for i, axis := range geometry.Axes {
		extent := bbox.Extent(axis)
		if extent == 0 {
			return 0, &DegenerateAxisError{Axis: axis}
		}
		factor *= targets[i] / extent
	}
	return factor, nil
}
