package stl

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobox/pkg/geometry"
)

const asciiTetrahedron = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 1
    endloop
  endfacet
  facet normal -1 0 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0.577 0.577 0.577
    outer loop
      vertex 1 0 0
      vertex 0 1 0
      vertex 0 0 1
    endloop
  endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiTetrahedron))
	require.NoError(t, err)

	assert.Equal(t, "tetra", model.Name)
	assert.Equal(t, 4, model.FacetCount())
	assert.Equal(t, geometry.NewVector3(0, 0, -1), model.Facets[0].Normal)
	assert.Len(t, model.Vertices(), 4)
	assert.InDelta(t, 1.5+0.8660254, model.SurfaceArea(), 1e-6)
}

func TestParseASCIIInvalidCoordinate(t *testing.T) {
	_, err := ParseReader(strings.NewReader("solid x\nfacet normal 0 0 1\nvertex 0 a 0\nendfacet\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "solid binary header")
	buf.Write(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []binaryFacet{
		{Normal: [3]float32{0, 0, 1}, V1: [3]float32{0, 0, 0}, V2: [3]float32{1, 0, 0}, V3: [3]float32{0, 1, 0}},
		{Normal: [3]float32{0, 0, 1}, V1: [3]float32{1, 0, 0}, V2: [3]float32{1, 1, 0}, V3: [3]float32{0, 1, 0}},
	}))

	model, err := ParseReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "solid binary header", model.Name)
	assert.Equal(t, 2, model.FacetCount())
	assert.Len(t, model.Vertices(), 4)
	assert.InDelta(t, 1, model.SurfaceArea(), 1e-9)
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(3)))

	_, err := ParseReader(&buf)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("does-not-exist.stl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
