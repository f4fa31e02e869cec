package weight

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/printwise/stlweight/internal/meshtest"
	"github.com/printwise/stlweight/pkg/material"
	"github.com/printwise/stlweight/pkg/stl"
)

// 10mm cube scaled to 100mm at 20% infill in PETG:
// 1000 mm³ × 1000 = 1000 cm³, 20% of that is 200 cm³, × 1.27 g/cm³ = 254 g.
func TestEstimateCubeScenario(t *testing.T) {
	data := meshtest.BinarySTL("cube", meshtest.CubeTriangles(10))

	grams, err := Estimate(data, Request{
		TargetX:       100,
		TargetY:       100,
		TargetZ:       100,
		InfillPercent: 20,
		Material:      "petg",
	})
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if !scalar.EqualWithinAbs(grams, 254.0, 1e-6) {
		t.Errorf("grams = %v, want 254", grams)
	}
}

func TestEstimateASCIIMatchesBinary(t *testing.T) {
	cube := meshtest.CubeTriangles(10)
	req := Request{TargetX: 50, TargetY: 50, TargetZ: 50, InfillPercent: 35, Material: "abs"}

	fromBinary, err := Estimate(meshtest.BinarySTL("", cube), req)
	if err != nil {
		t.Fatalf("Estimate(binary) failed: %v", err)
	}
	fromASCII, err := Estimate(meshtest.ASCIISTL("cube", cube), req)
	if err != nil {
		t.Fatalf("Estimate(ascii) failed: %v", err)
	}

	if !scalar.EqualWithinAbs(fromBinary, fromASCII, 1e-6) {
		t.Errorf("binary estimate %v != ascii estimate %v", fromBinary, fromASCII)
	}
}

func TestEstimateDefaultMaterial(t *testing.T) {
	data := meshtest.BinarySTL("cube", meshtest.CubeTriangles(10))
	req := Request{TargetX: 10, TargetY: 10, TargetZ: 10, InfillPercent: 100}

	grams, err := Estimate(data, req)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	// 1 cm³ of solid PLA
	if !scalar.EqualWithinAbs(grams, float64(material.PLA), 1e-6) {
		t.Errorf("grams = %v, want %v (PLA default)", grams, float64(material.PLA))
	}
}

func TestEstimateErrors(t *testing.T) {
	cube := meshtest.BinarySTL("cube", meshtest.CubeTriangles(10))
	valid := Request{TargetX: 10, TargetY: 10, TargetZ: 10, InfillPercent: 20}

	t.Run("unknown material", func(t *testing.T) {
		req := valid
		req.Material = "unobtainium"
		if _, err := Estimate(cube, req); !errors.Is(err, material.ErrUnknownMaterial) {
			t.Errorf("error = %v, want ErrUnknownMaterial", err)
		}
	})

	t.Run("empty buffer", func(t *testing.T) {
		if _, err := Estimate(nil, valid); !errors.Is(err, stl.ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("malformed buffer", func(t *testing.T) {
		if _, err := Estimate([]byte("garbage"), valid); !errors.Is(err, stl.ErrMalformed) {
			t.Errorf("error = %v, want ErrMalformed", err)
		}
	})

	t.Run("zero target", func(t *testing.T) {
		req := valid
		req.TargetZ = 0
		if _, err := Estimate(cube, req); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("error = %v, want ErrInvalidTarget", err)
		}
	})

	t.Run("infill out of range", func(t *testing.T) {
		req := valid
		req.InfillPercent = 150
		if _, err := Estimate(cube, req); !errors.Is(err, ErrInvalidInfill) {
			t.Errorf("error = %v, want ErrInvalidInfill", err)
		}
	})

	t.Run("flat mesh", func(t *testing.T) {
		// The two bottom-face triangles alone have zero Z extent.
		data := meshtest.ASCIISTL("flat", meshtest.CubeTriangles(10)[:2])
		var degenerate *DegenerateAxisError
		if _, err := Estimate(data, valid); !errors.As(err, &degenerate) {
			t.Errorf("error = %v, want DegenerateAxisError", err)
		}
	})
}
