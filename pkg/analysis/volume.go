// Package analysis computes geometric measurements of STL models: enclosed
// volume, bounding box and surface statistics.
package analysis

import (
	"math"

	"github.com/printwise/stlweight/pkg/geometry"
	"github.com/printwise/stlweight/pkg/stl"
)

// MeshVolume returns the enclosed volume of a model in cubic millimeters
// together with its axis-aligned bounding box.
//
// The volume is the absolute value of the summed signed tetrahedra formed by
// each triangle and the origin (divergence theorem). Taking the absolute
// value makes the result independent of the winding direction, which STL
// producers do not agree on. An open or inconsistently wound mesh yields an
// approximate value rather than an error.
//
// The bounding box is tracked in the same traversal; an empty model yields
// volume 0 and an empty box.
func MeshVolume(model *stl.Model) (float64, geometry.BoundingBox) {
	signed := 0.0
	bbox := geometry.NewBoundingBox()

	for _, triangle := range model.Triangles {
		signed += triangle.SignedVolume()
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return math.Abs(signed), bbox
}
