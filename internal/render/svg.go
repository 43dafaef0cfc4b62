// Package render assembles SVG documents (and an HTML wrapper) from
// reconstructed sector boundaries: one filled path per sector, shaded by
// its light level, followed by a stroke pass over every wall edge.
package render

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wadsvg/wadsvg/internal/geometry"
	"github.com/wadsvg/wadsvg/pkg/wad"
)

const (
	oneSidedStroke      = "red"
	oneSidedStrokeWidth = "2"
	twoSidedStroke      = "rgba(255, 0, 0, 0.25)"
	twoSidedStrokeWidth = "1"
)

type svgPath struct {
	XMLName xml.Name `xml:"path"`
	ID      string   `xml:"id,attr"`
	Fill    string   `xml:"fill,attr"`
	Stroke  string   `xml:"stroke,attr"`
	Data    string   `xml:"d,attr"`
}

type svgLine struct {
	XMLName     xml.Name `xml:"line"`
	X1          string   `xml:"x1,attr"`
	Y1          string   `xml:"y1,attr"`
	X2          string   `xml:"x2,attr"`
	Y2          string   `xml:"y2,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
}

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Paths   []svgPath
	Lines   []svgLine
}

// Renderer turns map boundaries into SVG documents.
type Renderer struct {
	logger *slog.Logger
}

// New creates a renderer.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Map renders one map to an SVG document. Degenerate-sector warnings are
// returned alongside the document; they do not fail the render.
func (r *Renderer) Map(m *wad.MapData) ([]byte, []geometry.Warning, error) {
	builder, err := geometry.NewBuilder(m, r.logger)
	if err != nil {
		return nil, nil, err
	}
	boundaries, warnings, err := builder.All()
	if err != nil {
		return nil, nil, err
	}

	bounds := builder.Bounds()
	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		ViewBox: fmt.Sprintf("0 0 %d %d", bounds.Width(), bounds.Height()),
	}

	dx, dy := float64(bounds.OffsetX()), float64(bounds.OffsetY())

	// Fill pass: one path per sector, every loop a subpath so donut
	// sectors render with their holes.
	for _, boundary := range boundaries {
		fill := fmt.Sprintf("rgb(%d, %d, %d)", boundary.Light, boundary.Light, boundary.Light)
		doc.Paths = append(doc.Paths, svgPath{
			ID:     fmt.Sprintf("sector%d", boundary.Sector),
			Fill:   fill,
			Stroke: "none",
			Data:   pathData(boundary.Loops, dx, dy),
		})
	}

	// Stroke pass: solid walls bold, sector-to-sector edges faint.
	for _, boundary := range boundaries {
		for _, s := range boundary.Segments {
			line := svgLine{
				X1:          coord(s.From.X + dx),
				Y1:          coord(s.From.Y + dy),
				X2:          coord(s.To.X + dx),
				Y2:          coord(s.To.Y + dy),
				Stroke:      twoSidedStroke,
				StrokeWidth: twoSidedStrokeWidth,
			}
			if s.OneSided {
				line.Stroke = oneSidedStroke
				line.StrokeWidth = oneSidedStrokeWidth
			}
			doc.Lines = append(doc.Lines, line)
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling SVG for map %s: %w", m.Name, err)
	}

	r.logger.Info("Rendered map",
		"map", m.Name,
		"sectors", len(boundaries),
		"width", bounds.Width(),
		"height", bounds.Height(),
		"degenerateSectors", len(warnings))
	return out, warnings, nil
}

// pathData builds the path commands for a sector's loops. Each loop is a
// subpath closed with Z; open loops keep their missing edge implicit, which
// matches how they were rendered historically.
func pathData(loops []geometry.Loop, dx, dy float64) string {
	var b strings.Builder
	for _, loop := range loops {
		for i, p := range loop.Points {
			if i == 0 {
				b.WriteString("M ")
			} else {
				b.WriteString(" L ")
			}
			b.WriteString(coord(p.X + dx))
			b.WriteByte(' ')
			b.WriteString(coord(p.Y + dy))
		}
		b.WriteString(" Z ")
	}
	return strings.TrimSpace(b.String())
}

// coord formats a render-space coordinate. Values originate from int16
// vertexes, so they print without a fractional part.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
