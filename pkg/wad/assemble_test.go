package wad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSortsMapsByName(t *testing.T) {
	a := newContainer("IWAD").
		addMarker("E1M2").
		addLump("VERTEXES", le16(1, 1)).
		addMarker("E1M1").
		addLump("VERTEXES", le16(2, 2)).
		decode(t)

	require.Len(t, a.Maps, 2)
	assert.Equal(t, "E1M1", a.Maps[0].Name)
	assert.Equal(t, "E1M2", a.Maps[1].Name)
	assert.Equal(t, []Vertex{{2, 2}}, a.Maps[0].Vertexes)
	assert.Equal(t, []Vertex{{1, 1}}, a.Maps[1].Vertexes)
}

func TestAssembleUnrecognizedNameEndsRun(t *testing.T) {
	a := newContainer("IWAD").
		addMarker("MAP01").
		addLump("VERTEXES", le16(1, 1)).
		addLump("PLAYPAL", []byte{1, 2, 3}).
		addLump("THINGS", le16(0, 0, 0, 1, 0)).
		decode(t)

	// PLAYPAL ends MAP01's run, so the THINGS lump after it belongs to no
	// map even though its name is recognized.
	require.Len(t, a.Maps, 1)
	assert.Equal(t, []Vertex{{1, 1}}, a.Maps[0].Vertexes)
	assert.Empty(t, a.Maps[0].Things)
}

func TestAssembleMarkerWithoutRunIsEmptyMap(t *testing.T) {
	a := newContainer("IWAD").
		addMarker("MAP07").
		addLump("PLAYPAL", []byte{0}).
		decode(t)

	require.Len(t, a.Maps, 1)
	m := a.Maps[0]
	assert.Equal(t, "MAP07", m.Name)
	assert.Empty(t, m.Vertexes)
	assert.Empty(t, m.LineDefs)
	assert.Empty(t, m.SideDefs)
	assert.Empty(t, m.Sectors)
	assert.Empty(t, m.Things)
}

func TestAssembleBackToBackMarkers(t *testing.T) {
	// The entry ending E1M1's run is E1M2's own marker and must be
	// re-examined, not consumed.
	a := newContainer("IWAD").
		addMarker("E1M1").
		addLump("VERTEXES", le16(1, 1)).
		addMarker("E1M2").
		addLump("VERTEXES", le16(2, 2)).
		decode(t)

	require.Len(t, a.Maps, 2)
	assert.Equal(t, "E1M1", a.Maps[0].Name)
	assert.Equal(t, "E1M2", a.Maps[1].Name)
}

func TestAssembleMissingLumpDecodesEmpty(t *testing.T) {
	a := newContainer("IWAD").
		addMarker("MAP01").
		addLump("VERTEXES", le16(1, 1)).
		decode(t)

	require.Len(t, a.Maps, 1)
	assert.NotNil(t, a.Maps[0].LineDefs)
	assert.Empty(t, a.Maps[0].LineDefs)
}

func TestAssembleIgnoresNonMapLumps(t *testing.T) {
	// A zero-size entry with offset 0 is an ordinary empty lump, not a
	// map marker.
	c := newContainer("IWAD")
	c.entries = append(c.entries, DirectoryEntry{Name: "F_START", Offset: 0, Size: 0})
	a, err := Decode(bytes.NewReader(c.build()), nil)
	require.NoError(t, err)
	assert.Empty(t, a.Maps)
}

func TestMapLookup(t *testing.T) {
	a := newContainer("IWAD").
		addMarker("MAP01").
		decode(t)

	m, err := a.Map("MAP01")
	require.NoError(t, err)
	assert.Equal(t, "MAP01", m.Name)

	_, err = a.Map("MAP99")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMapNotFound)
}
