// Package weight converts mesh volume into an infill-adjusted mass estimate
// for a 3D print.
package weight

import (
	"errors"

	"github.com/printwise/stlweight/pkg/material"
)

// ErrInvalidInfill is returned for an infill percentage outside [0, 100].
var ErrInvalidInfill = errors.New("weight: infill percentage must be between 0 and 100")

// Shell approximation used by the optional shell model: two 0.4mm perimeters
// expressed as a volume fraction, plus solid top/bottom layers.
const (
	shellFraction       = 0.08
	solidLayersFraction = 0.15
)

type calcOptions struct {
	shellModel bool
}

// Option configures the weight calculation.
type Option func(*calcOptions)

// WithShellModel switches from the plain linear infill model to a model
// that treats the outer shell and top/bottom layers as fully solid and
// applies the infill percentage only to the remaining interior.
func WithShellModel() Option {
	return func(o *calcOptions) {
		o.shellModel = true
	}
}

// Grams converts a scaled volume in cubic millimeters into a mass estimate.
//
// The default model applies the infill percentage linearly to the whole
// volume. That understates prints with dense walls and sparse infill, but it
// is the behavior callers of this estimator have always gotten; the shell
// model is opt-in via WithShellModel.
func Grams(scaledVolumeMM3, infillPercent float64, density material.Density, opts ...Option) (float64, error) {
	if infillPercent < 0 || infillPercent > 100 {
		return 0, ErrInvalidInfill
	}

	var cfg calcOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	volumeCM3 := scaledVolumeMM3 / 1000.0
	infill := infillPercent / 100.0

	var effectiveCM3 float64
	if cfg.shellModel {
		solid := shellFraction + solidLayersFraction
		effectiveCM3 = solid*volumeCM3 + (1-solid)*volumeCM3*infill
	} else {
		effectiveCM3 = volumeCM3 * infill
	}

	return effectiveCM3 * float64(density), nil
}
