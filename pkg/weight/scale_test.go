package weight

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/printwise/stlweight/pkg/geometry"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(minX, minY, minZ))
	bbox.Extend(geometry.NewVector3(maxX, maxY, maxZ))
	return bbox
}

func TestScaleFactorIdentity(t *testing.T) {
	// Targets equal to the source extents must yield exactly 1.
	factor, err := ScaleFactor(box(0, 0, 0, 10, 20, 5), 10, 20, 5)
	if err != nil {
		t.Fatalf("ScaleFactor failed: %v", err)
	}
	if factor != 1.0 {
		t.Errorf("factor = %v, want exactly 1", factor)
	}
}

func TestScaleFactorUniform(t *testing.T) {
	factor, err := ScaleFactor(box(0, 0, 0, 10, 10, 10), 100, 100, 100)
	if err != nil {
		t.Fatalf("ScaleFactor failed: %v", err)
	}
	if !scalar.EqualWithinAbs(factor, 1000.0, 1e-9) {
		t.Errorf("factor = %v, want 1000", factor)
	}
}

// Scaling one axis by k multiplies the volume by k, not k cubed.
func TestScaleFactorAxisIndependence(t *testing.T) {
	bbox := box(0, 0, 0, 10, 10, 10)

	base, err := ScaleFactor(bbox, 10, 10, 10)
	if err != nil {
		t.Fatalf("ScaleFactor failed: %v", err)
	}
	stretched, err := ScaleFactor(bbox, 30, 10, 10)
	if err != nil {
		t.Fatalf("ScaleFactor failed: %v", err)
	}

	if !scalar.EqualWithinAbs(stretched/base, 3.0, 1e-9) {
		t.Errorf("stretching X by 3 changed volume factor by %v, want 3", stretched/base)
	}
}

func TestScaleFactorOffsetBox(t *testing.T) {
	// Extents matter, not absolute positions.
	factor, err := ScaleFactor(box(-5, 100, 30, 5, 110, 40), 20, 20, 20)
	if err != nil {
		t.Fatalf("ScaleFactor failed: %v", err)
	}
	if !scalar.EqualWithinAbs(factor, 8.0, 1e-9) {
		t.Errorf("factor = %v, want 8", factor)
	}
}

func TestScaleFactorInvalidTarget(t *testing.T) {
	bbox := box(0, 0, 0, 10, 10, 10)

	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"zero x", 0, 10, 10},
		{"zero y", 10, 0, 10},
		{"zero z", 10, 10, 0},
		{"negative", 10, -5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, err := ScaleFactor(bbox, tt.x, tt.y, tt.z)
			if !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("error = %v, want ErrInvalidTarget", err)
			}
			if factor != 0 {
				t.Errorf("factor = %v, want 0 on error", factor)
			}
		})
	}
}

func TestScaleFactorDegenerateAxis(t *testing.T) {
	// Flat mesh: zero extent along Z
	flat := box(0, 0, 5, 10, 10, 5)

	_, err := ScaleFactor(flat, 10, 10, 10)

	var degenerate *DegenerateAxisError
	if !errors.As(err, &degenerate) {
		t.Fatalf("error = %v, want DegenerateAxisError", err)
	}
	if degenerate.Axis != geometry.AxisZ {
		t.Errorf("degenerate axis = %s, want Z", degenerate.Axis)
	}
}

func TestScaleFactorEmptyBox(t *testing.T) {
	_, err := ScaleFactor(geometry.NewBoundingBox(), 10, 10, 10)

	var degenerate *DegenerateAxisError
	if !errors.As(err, &degenerate) {
		t.Fatalf("error = %v, want DegenerateAxisError", err)
	}
}
