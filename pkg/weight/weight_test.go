package weight

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/printwise/stlweight/pkg/material"
)

func TestGramsLinearModel(t *testing.T) {
	// 1,000,000 mm³ = 1000 cm³ at 20% infill in PETG: 200 cm³ × 1.27
	grams, err := Grams(1_000_000, 20, material.PETG)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	if !scalar.EqualWithinAbs(grams, 254.0, 1e-9) {
		t.Errorf("grams = %v, want 254", grams)
	}
}

func TestGramsInfillLinearity(t *testing.T) {
	full, err := Grams(500_000, 100, material.PLA)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	half, err := Grams(500_000, 50, material.PLA)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	empty, err := Grams(500_000, 0, material.PLA)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}

	if full != 2*half {
		t.Errorf("mass at 100%% infill = %v, want exactly twice %v", full, half)
	}
	if empty != 0 {
		t.Errorf("mass at 0%% infill = %v, want exactly 0", empty)
	}
}

func TestGramsInvalidInfill(t *testing.T) {
	for _, infill := range []float64{-1, 100.001, 150} {
		grams, err := Grams(1000, infill, material.PLA)
		if !errors.Is(err, ErrInvalidInfill) {
			t.Errorf("Grams(infill=%v) error = %v, want ErrInvalidInfill", infill, err)
		}
		if grams != 0 {
			t.Errorf("Grams(infill=%v) = %v, want 0 on error; invalid infill must not clamp", infill, grams)
		}
	}
}

func TestGramsShellModel(t *testing.T) {
	// 1000 cm³, 0% infill: only the solid shell fraction contributes.
	grams, err := Grams(1_000_000, 0, material.PLA, WithShellModel())
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	want := (shellFraction + solidLayersFraction) * 1000 * float64(material.PLA)
	if !scalar.EqualWithinAbs(grams, want, 1e-9) {
		t.Errorf("grams = %v, want %v", grams, want)
	}

	// At 100% infill both models agree.
	shell, err := Grams(1_000_000, 100, material.PLA, WithShellModel())
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	linear, err := Grams(1_000_000, 100, material.PLA)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	if !scalar.EqualWithinAbs(shell, linear, 1e-9) {
		t.Errorf("shell model at full infill = %v, linear = %v, want equal", shell, linear)
	}
}

func TestGramsDensityProportionality(t *testing.T) {
	abs, err := Grams(250_000, 40, material.ABS)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}
	tpu, err := Grams(250_000, 40, material.TPU)
	if err != nil {
		t.Fatalf("Grams failed: %v", err)
	}

	ratio := tpu / abs
	if !scalar.EqualWithinAbs(ratio, float64(material.TPU)/float64(material.ABS), 1e-12) {
		t.Errorf("density ratio = %v, want %v", ratio, float64(material.TPU)/float64(material.ABS))
	}
}
