package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// IndexExport is the root JSON structure
type IndexExport struct {
	Path      string    `json:"path"`
	Kind      string    `json:"kind"`
	IndexedAt time.Time `json:"indexedAt"`
	MapCount  int       `json:"mapCount"`
	Maps      []MapJSON `json:"maps"`
}

// MapJSON represents one map with its reconstructed sectors and things
type MapJSON struct {
	Name        string       `json:"name"`
	Vertexes    int          `json:"vertexes"`
	LineDefs    int          `json:"lineDefs"`
	SideDefs    int          `json:"sideDefs"`
	SectorCount int          `json:"sectorCount"`
	ThingCount  int          `json:"thingCount"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Degenerate  int          `json:"degenerate"`
	Sectors     []SectorJSON `json:"sectors"`
	Things      []ThingJSON  `json:"things"`
}

// SectorJSON is one sector boundary; Loops is an array of loops, each an
// array of [x, y] pairs in render space.
type SectorJSON struct {
	Index  int            `json:"index"`
	Light  uint8          `json:"light"`
	Closed bool           `json:"closed"`
	Loops  datatypes.JSON `json:"loops"`
}

// ThingJSON is one placed object
type ThingJSON struct {
	Code  int16  `json:"code"`
	Name  string `json:"name"`
	X     int16  `json:"x"`
	Y     int16  `json:"y"`
	Angle int16  `json:"angle"`
}

// exportJSON writes the index data to a JSON file, gzipped when configured
func (b *Backend) exportJSON() error {
	export := b.buildExport()

	// Build filename from the archive file name
	base := filepath.Base(b.archive.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, " ", "_")
	timestamp := b.archive.IndexedAt.Format("20060102_150405")

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s_%s.json.gz", base, timestamp)
	} else {
		filename = fmt.Sprintf("%s_%s.json", base, timestamp)
	}

	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := b.writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := b.writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func (b *Backend) buildExport() IndexExport {
	export := IndexExport{
		Path:      b.archive.Path,
		Kind:      b.archive.Kind,
		IndexedAt: b.archive.IndexedAt,
		MapCount:  len(b.maps),
		Maps:      make([]MapJSON, 0, len(b.maps)),
	}

	for _, entry := range b.maps {
		m := MapJSON{
			Name:        entry.Map.Name,
			Vertexes:    entry.Map.Vertexes,
			LineDefs:    entry.Map.LineDefs,
			SideDefs:    entry.Map.SideDefs,
			SectorCount: entry.Map.Sectors,
			ThingCount:  entry.Map.Things,
			Width:       entry.Map.Width,
			Height:      entry.Map.Height,
			Degenerate:  entry.Map.Degenerate,
			Sectors:     make([]SectorJSON, 0, len(entry.Sectors)),
			Things:      make([]ThingJSON, 0, len(entry.Things)),
		}

		for _, s := range entry.Sectors {
			m.Sectors = append(m.Sectors, SectorJSON{
				Index:  s.SectorIndex,
				Light:  s.Light,
				Closed: s.Closed,
				Loops:  s.Loops,
			})
		}

		for _, t := range entry.Things {
			m.Things = append(m.Things, ThingJSON{
				Code:  t.Code,
				Name:  t.Name,
				X:     t.X,
				Y:     t.Y,
				Angle: t.Angle,
			})
		}

		export.Maps = append(export.Maps, m)
	}

	return export
}

func (b *Backend) writeJSON(path string, data IndexExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	return encoder.Encode(data)
}

func (b *Backend) writeGzipJSON(path string, data IndexExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	return encoder.Encode(data)
}
