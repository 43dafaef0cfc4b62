package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadsvg/wadsvg/pkg/wad"
)

// roomMap builds a 64x64 room: three solid walls and one edge shared with
// a second sector.
func roomMap() *wad.MapData {
	return &wad.MapData{
		Name: "E1M1",
		Vertexes: []wad.Vertex{
			{X: 0, Y: 0}, {X: 64, Y: 0}, {X: 64, Y: 64}, {X: 0, Y: 64},
		},
		LineDefs: []wad.LineDef{
			{VertexBegin: 0, VertexEnd: 1, SidedefRight: 0, SidedefLeft: -1},
			{VertexBegin: 1, VertexEnd: 2, SidedefRight: 0, SidedefLeft: -1},
			{VertexBegin: 2, VertexEnd: 3, SidedefRight: 0, SidedefLeft: -1},
			{VertexBegin: 3, VertexEnd: 0, SidedefRight: 0, SidedefLeft: 1},
		},
		SideDefs: []wad.SideDef{
			{Sector: 0},
			{Sector: 1},
		},
		Sectors: []wad.Sector{
			{LightLevel: 144},
			{LightLevel: 400}, // clamps to 255
		},
	}
}

func TestRenderMap(t *testing.T) {
	out, warnings, err := New(nil).Map(roomMap())
	require.NoError(t, err)

	// Sector 1 owns a single edge; its boundary cannot close, which is a
	// warning, never a failure.
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Sector)

	svg := string(out)
	assert.Contains(t, svg, `viewBox="0 0 64 64"`)
	assert.Contains(t, svg, `id="sector0"`)
	assert.Contains(t, svg, `fill="rgb(144, 144, 144)"`)
	assert.Contains(t, svg, `fill="rgb(255, 255, 255)"`)

	// Three solid walls render bold, the shared edge faint (once per
	// sector that owns it).
	assert.Equal(t, 3, strings.Count(svg, `stroke="red"`))
	assert.Equal(t, 2, strings.Count(svg, `stroke="rgba(255, 0, 0, 0.25)"`))
}

func TestRenderPathIsClosed(t *testing.T) {
	out, _, err := New(nil).Map(roomMap())
	require.NoError(t, err)
	assert.Contains(t, string(out), "M 0 64 L 64 64 L 64 0 L 0 0 Z")
}

func TestRenderEmptyMapFails(t *testing.T) {
	_, _, err := New(nil).Map(&wad.MapData{Name: "MAP00"})
	require.Error(t, err)
}

func TestHTMLWrapsSVG(t *testing.T) {
	html := string(HTML([]byte("<svg>doc</svg>")))
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<svg>doc</svg>")
	assert.Contains(t, html, "background-image")
}
