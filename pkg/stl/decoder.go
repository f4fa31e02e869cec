// Package stl decodes STL files in both their binary and ASCII encodings.
//
// Decoding is all-or-nothing: a buffer either yields a complete model or an
// error, never a partial mesh. The decoder performs no I/O of its own; it
// operates on bytes the caller already holds.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/printwise/stlweight/pkg/geometry"
)

const (
	// binaryHeaderSize is the 80-byte comment header plus the 4-byte
	// little-endian triangle count.
	binaryHeaderSize = 84
	// binaryRecordSize is one facet record: normal and three vertices as
	// float32 triples, plus a 2-byte attribute field.
	binaryRecordSize = 50
)

var (
	// ErrEmptyInput is returned for a zero-length buffer.
	ErrEmptyInput = errors.New("stl: empty input")
	// ErrMalformed is returned when the buffer matches neither STL encoding.
	ErrMalformed = errors.New("stl: malformed input")
)

// Decode parses a raw STL byte buffer into a Model, auto-detecting the
// encoding. Binary is probed first by checking that the declared triangle
// count exactly accounts for the buffer length; some binary files begin with
// the keyword "solid" in their header, so the prefix alone proves nothing.
// If the structural probe fails the buffer is parsed as ASCII.
func Decode(data []byte) (*Model, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if isBinary(data) {
		return decodeBinary(data)
	}
	return decodeASCII(data)
}

// ParseFile reads an STL file from disk and decodes it.
func ParseFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data)
}

// isBinary reports whether the declared triangle count exactly matches the
// buffer length for the fixed binary record layout.
func isBinary(data []byte) bool {
	if len(data) < binaryHeaderSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:binaryHeaderSize])
	return uint64(len(data)) == binaryHeaderSize+binaryRecordSize*uint64(count)
}

// facetRecord mirrors the 50-byte binary STL facet layout.
type facetRecord struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func decodeBinary(data []byte) (*Model, error) {
	header := bytes.TrimRight(data[:80], "\x00")
	model := NewModel(string(bytes.TrimSpace(header)))

	count := binary.LittleEndian.Uint32(data[80:binaryHeaderSize])
	reader := bytes.NewReader(data[binaryHeaderSize:])

	var rec facetRecord
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: facet %d: %v", ErrMalformed, i, err)
		}
		model.AddTriangle(geometry.NewTriangle(
			vec(rec.Normal),
			vec(rec.V1),
			vec(rec.V2),
			vec(rec.V3),
		))
	}
	return model, nil
}

func vec(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

// decodeASCII parses the textual encoding. Tokens are scanned individually so
// any whitespace or newline layout is accepted.
func decodeASCII(data []byte) (*Model, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)

	model := NewModel("")

	var (
		seenSolid     bool
		currentNormal geometry.Vector3
		vertices      []geometry.Vector3
	)

	for scanner.Scan() {
		switch token := scanner.Text(); token {
		case "solid":
			seenSolid = true

		case "facet":
			normal, err := scanKeywordVector(scanner, "normal")
			if err != nil {
				return nil, err
			}
			currentNormal = normal

		case "vertex":
			v, err := scanVector(scanner)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: facet %d has %d vertices, want 3",
					ErrMalformed, model.TriangleCount(), len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(
				currentNormal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]

		case "endsolid":
			// trailing tokens after endsolid are the solid name; ignore

		default:
			if !seenSolid && model.TriangleCount() == 0 {
				// Not ASCII STL at all, and the binary probe already failed.
				return nil, fmt.Errorf("%w: not a binary or ASCII STL buffer", ErrMalformed)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !seenSolid {
		return nil, fmt.Errorf("%w: not a binary or ASCII STL buffer", ErrMalformed)
	}
	if len(vertices) != 0 {
		return nil, fmt.Errorf("%w: unterminated facet with %d vertices",
			ErrMalformed, len(vertices))
	}
	return model, nil
}

// scanKeywordVector consumes an expected keyword followed by three floats.
func scanKeywordVector(scanner *bufio.Scanner, keyword string) (geometry.Vector3, error) {
	if !scanner.Scan() || scanner.Text() != keyword {
		return geometry.Vector3{}, fmt.Errorf("%w: expected %q after facet", ErrMalformed, keyword)
	}
	return scanVector(scanner)
}

// scanVector consumes three float tokens. Decimal and scientific notation
// are both accepted.
func scanVector(scanner *bufio.Scanner) (geometry.Vector3, error) {
	var coords [3]float64
	for i := range coords {
		if !scanner.Scan() {
			return geometry.Vector3{}, fmt.Errorf("%w: unexpected end of input in coordinate triple", ErrMalformed)
		}
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: bad coordinate %q", ErrMalformed, scanner.Text())
		}
		coords[i] = value
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}
