package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/printwise/stlweight/pkg/geometry"
	"github.com/printwise/stlweight/pkg/stl"
)

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // enclosed volume, mm³
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel performs comprehensive analysis on an STL model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	volume, bbox := MeshVolume(model)

	result := &MeasurementResult{
		BoundingBox:   bbox,
		Dimensions:    bbox.Size(),
		Volume:        volume,
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}

	lengths := make([]float64, 0, 3*len(model.Triangles))
	for _, triangle := range model.Triangles {
		edges := triangle.EdgeLengths()
		lengths = append(lengths, edges[:]...)
	}

	result.EdgeCount = len(lengths)
	if len(lengths) > 0 {
		result.MinEdgeLength = floats.Min(lengths)
		result.MaxEdgeLength = floats.Max(lengths)
		result.AvgEdgeLength = stat.Mean(lengths, nil)
	}

	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
