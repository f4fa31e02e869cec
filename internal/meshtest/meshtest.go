// Package meshtest builds small STL fixtures for tests: a closed cube mesh
// and encoders for both STL variants.
package meshtest

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/printwise/stlweight/pkg/geometry"
)

// CubeTriangles returns the 12 triangles of an axis-aligned cube spanning
// [0,side] on every axis, wound with outward-facing normals.
func CubeTriangles(side float64) []geometry.Triangle {
	s := side
	v := func(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }
	tri := func(a, b, c geometry.Vector3) geometry.Triangle {
		t := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
		t.Normal = t.CalculateNormal()
		return t
	}

	return []geometry.Triangle{
		// bottom, normal -Z
		tri(v(0, 0, 0), v(s, s, 0), v(s, 0, 0)),
		tri(v(0, 0, 0), v(0, s, 0), v(s, s, 0)),
		// top, normal +Z
		tri(v(0, 0, s), v(s, 0, s), v(s, s, s)),
		tri(v(0, 0, s), v(s, s, s), v(0, s, s)),
		// front, normal -Y
		tri(v(0, 0, 0), v(s, 0, 0), v(s, 0, s)),
		tri(v(0, 0, 0), v(s, 0, s), v(0, 0, s)),
		// back, normal +Y
		tri(v(0, s, 0), v(s, s, s), v(s, s, 0)),
		tri(v(0, s, 0), v(0, s, s), v(s, s, s)),
		// left, normal -X
		tri(v(0, 0, 0), v(0, 0, s), v(0, s, s)),
		tri(v(0, 0, 0), v(0, s, s), v(0, s, 0)),
		// right, normal +X
		tri(v(s, 0, 0), v(s, s, 0), v(s, s, s)),
		tri(v(s, 0, 0), v(s, s, s), v(s, 0, s)),
	}
}

// BinarySTL encodes triangles as a binary STL buffer with the given header
// comment.
func BinarySTL(header string, triangles []geometry.Triangle) []byte {
	var buf bytes.Buffer

	var head [80]byte
	copy(head[:], header)
	buf.Write(head[:])

	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(triangles)))
	for _, t := range triangles {
		for _, v := range []geometry.Vector3{t.Normal, t.V1, t.V2, t.V3} {
			_ = binary.Write(&buf, binary.LittleEndian,
				[3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

// ASCIISTL encodes triangles as an ASCII STL buffer.
func ASCIISTL(name string, triangles []geometry.Triangle) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "solid %s\n", name)
	for _, t := range triangles {
		fmt.Fprintf(&buf, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(&buf, "    outer loop\n")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(&buf, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(&buf, "    endloop\n")
		fmt.Fprintf(&buf, "  endfacet\n")
	}
	fmt.Fprintf(&buf, "endsolid %s\n", name)
	return buf.Bytes()
}
