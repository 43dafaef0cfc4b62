// Package geometry reconstructs sector boundaries from a decoded map: it
// turns the unordered bag of wall edges referencing a sector into closed
// polygon loops suitable for fill rendering, plus a per-edge stroke list.
package geometry

import (
	"fmt"
	"log/slog"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/wadsvg/wadsvg/pkg/wad"
)

// Segment is one wall edge materialized into render-space coordinates.
// OneSided edges bound solid wall; two-sided edges separate two sectors.
type Segment struct {
	From     geom.XY
	To       geom.XY
	OneSided bool
}

// Loop is an ordered point chain bounding part of a sector. A closed loop
// does not repeat its starting point. Open loops occur on non-manifold
// input and are preserved as-is rather than force-closed.
type Loop struct {
	Points []geom.XY
	Closed bool
}

// LineString exports the loop as a simplefeatures line string, re-appending
// the starting point for closed loops.
func (l Loop) LineString() geom.LineString {
	pts := l.Points
	if l.Closed && len(pts) > 0 {
		pts = append(append([]geom.XY{}, pts...), pts[0])
	}
	flat := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
}

// Boundary is the reconstructed outline of one sector: fill loops, the full
// stroke segment list, and the display light level.
type Boundary struct {
	Sector   int
	Loops    []Loop
	Segments []Segment

	// Light is the sector's light level clamped to [0,255]. The stored
	// value on wad.Sector may be out of range.
	Light uint8
}

// Warning reports a sector whose stitching left an unconnected tail. It is
// informational; the sector's output still includes the open loop.
type Warning struct {
	Sector    int
	Remaining int
}

// Bounds is the map's pixel bounding box, derived from the global vertex
// extent of all wall edges.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the pixel width of the map.
func (b Bounds) Width() int { return b.MaxX - b.MinX }

// Height returns the pixel height of the map.
func (b Bounds) Height() int { return b.MaxY - b.MinY }

// OffsetX is the translation that puts the map's left edge at x=0.
func (b Bounds) OffsetX() int { return -b.MinX }

// OffsetY is the translation that puts the map's top edge at y=0 after the
// vertical flip.
func (b Bounds) OffsetY() int { return -b.MinY }

// Builder reconstructs sector boundaries for one immutable map. Methods are
// read-only; boundary building for different sectors may run concurrently.
type Builder struct {
	m      *wad.MapData
	logger *slog.Logger
	bounds Bounds
}

// NewBuilder validates the map's wall-edge vertex references and computes
// the global coordinate extent used by the output transform.
func NewBuilder(m *wad.MapData, logger *slog.Logger) (*Builder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(m.LineDefs) == 0 {
		return nil, fmt.Errorf("map %s has no wall edges", m.Name)
	}

	b := &Builder{m: m, logger: logger}

	first := true
	for i, l := range m.LineDefs {
		v1, err := b.vertex(l.VertexBegin, i)
		if err != nil {
			return nil, err
		}
		v2, err := b.vertex(l.VertexEnd, i)
		if err != nil {
			return nil, err
		}
		for _, v := range []wad.Vertex{v1, v2} {
			x, y := int(v.X), int(v.Y)
			if first || x < b.bounds.MinX {
				b.bounds.MinX = x
			}
			if first || x > b.bounds.MaxX {
				b.bounds.MaxX = x
			}
			if first || y < b.bounds.MinY {
				b.bounds.MinY = y
			}
			if first || y > b.bounds.MaxY {
				b.bounds.MaxY = y
			}
			first = false
		}
	}
	return b, nil
}

// Bounds returns the map's pixel bounding box.
func (b *Builder) Bounds() Bounds {
	return b.bounds
}

// All builds boundaries for every sector of the map, collecting warnings
// for degenerate sectors instead of failing.
func (b *Builder) All() ([]Boundary, []Warning, error) {
	boundaries := make([]Boundary, 0, len(b.m.Sectors))
	var warnings []Warning
	for i := range b.m.Sectors {
		boundary, w, err := b.Sector(i)
		if err != nil {
			return nil, nil, err
		}
		boundaries = append(boundaries, boundary)
		warnings = append(warnings, w...)
	}
	return boundaries, warnings, nil
}

// Sector reconstructs the boundary of one sector. An out-of-range index or
// a dangling sidedef/sector reference is a fatal format error; an
// unstitchable tail is a warning only.
func (b *Builder) Sector(index int) (Boundary, []Warning, error) {
	if index < 0 || index >= len(b.m.Sectors) {
		return Boundary{}, nil, fmt.Errorf("%w: sector index %d out of range (map %s has %d sectors)",
			wad.ErrFormat, index, b.m.Name, len(b.m.Sectors))
	}

	segments, err := b.memberSegments(index)
	if err != nil {
		return Boundary{}, nil, err
	}

	loops, warnings := b.stitch(index, segments)

	return Boundary{
		Sector:   index,
		Loops:    loops,
		Segments: segments,
		Light:    clampLight(b.m.Sectors[index].LightLevel),
	}, warnings, nil
}

// memberSegments materializes the wall edges belonging to a sector, in
// declaration order. An edge belongs when either of its faces references
// the sector. Coordinates are flipped vertically into render space (origin
// top-left, y growing downward) using the map's global extent.
func (b *Builder) memberSegments(index int) ([]Segment, error) {
	var segments []Segment
	for i, l := range b.m.LineDefs {
		member, err := b.references(l, i, index)
		if err != nil {
			return nil, err
		}
		if !member {
			continue
		}

		v1, err := b.vertex(l.VertexBegin, i)
		if err != nil {
			return nil, err
		}
		v2, err := b.vertex(l.VertexEnd, i)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{
			From:     b.flip(v1),
			To:       b.flip(v2),
			OneSided: !l.TwoSided(),
		})
	}
	return segments, nil
}

// references reports whether linedef l has a face on sector index.
func (b *Builder) references(l wad.LineDef, line, index int) (bool, error) {
	for _, side := range []int16{l.SidedefRight, l.SidedefLeft} {
		if side < 0 {
			continue
		}
		if int(side) >= len(b.m.SideDefs) {
			return false, fmt.Errorf("%w: linedef %d references sidedef %d, map %s has %d",
				wad.ErrFormat, line, side, b.m.Name, len(b.m.SideDefs))
		}
		sector := int(b.m.SideDefs[side].Sector)
		if sector >= len(b.m.Sectors) {
			return false, fmt.Errorf("%w: sidedef %d references sector %d, map %s has %d",
				wad.ErrFormat, side, sector, b.m.Name, len(b.m.Sectors))
		}
		if sector == index {
			return true, nil
		}
	}
	return false, nil
}

func (b *Builder) vertex(index int16, line int) (wad.Vertex, error) {
	if index < 0 || int(index) >= len(b.m.Vertexes) {
		return wad.Vertex{}, fmt.Errorf("%w: linedef %d references vertex %d, map %s has %d",
			wad.ErrFormat, line, index, b.m.Name, len(b.m.Vertexes))
	}
	return b.m.Vertexes[index], nil
}

// flip maps a stored vertex into render space. Vertexes are stored with y
// growing upward; output documents expect y growing downward, so the y axis
// is mirrored inside the map's global extent.
func (b *Builder) flip(v wad.Vertex) geom.XY {
	return geom.XY{
		X: float64(v.X),
		Y: float64(b.bounds.MaxY) - (float64(v.Y) - float64(b.bounds.MinY)),
	}
}

// stitch chains segments into loops. It pops the first remaining segment to
// start a loop, then repeatedly takes the first remaining segment (in list
// order) sharing the current endpoint, re-orienting it as needed. When no
// segment matches, the loop ends; if it did not return to its start it is
// left open and reported as a warning. The first-match tie-break is kept
// deliberately: a smarter choice at vertices shared by more than two edges
// would change output on known maps.
func (b *Builder) stitch(sector int, segments []Segment) ([]Loop, []Warning) {
	working := make([]Segment, len(segments))
	copy(working, segments)

	var loops []Loop
	var warnings []Warning

	for len(working) > 0 {
		seg := working[0]
		working = working[1:]

		points := []geom.XY{seg.From, seg.To}
		current := seg.To

		for {
			matched := -1
			for i, s := range working {
				if s.From == current || s.To == current {
					matched = i
					break
				}
			}
			if matched < 0 {
				break
			}
			next := working[matched]
			working = append(working[:matched], working[matched+1:]...)
			if next.To == current {
				current = next.From
			} else {
				current = next.To
			}
			points = append(points, current)
		}

		loop := Loop{Points: points}
		if len(points) > 2 && points[len(points)-1] == points[0] {
			loop.Points = points[:len(points)-1]
			loop.Closed = true
		} else {
			warnings = append(warnings, Warning{Sector: sector, Remaining: len(working)})
			b.logger.Warn("Sector boundary did not close",
				"map", b.m.Name,
				"sector", sector,
				"loopPoints", len(points),
				"segmentsRemaining", len(working))
		}
		loops = append(loops, loop)
	}
	return loops, warnings
}

// clampLight clamps a stored light level into the [0,255] display range.
func clampLight(level int16) uint8 {
	switch {
	case level < 0:
		return 0
	case level > 255:
		return 255
	default:
		return uint8(level)
	}
}
