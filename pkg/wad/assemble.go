package wad

import (
	"fmt"
	"io"
	"sort"
)

// mapLumpNames is the closed set of lump names recognized as belonging to a
// map's lump run. NODES, REJECT, SCRIPTS, SEGS, SSECTORS and BLOCKMAP are
// recognized so the run is consumed correctly, but never decoded.
var mapLumpNames = map[string]struct{}{
	"BLOCKMAP": {},
	"LINEDEFS": {},
	"NODES":    {},
	"REJECT":   {},
	"SCRIPTS":  {},
	"SECTORS":  {},
	"SEGS":     {},
	"SIDEDEFS": {},
	"SSECTORS": {},
	"THINGS":   {},
	"VERTEXES": {},
}

// assembleMaps groups directory entries into per-map bundles and decodes
// each bundle's geometry lumps. The directory encodes one marker entry
// (size 0, positive offset) per map, followed immediately by a contiguous
// run of recognized lump names; the first unrecognized name ends the run
// and is re-examined as a potential marker itself. The grouping is an
// explicit index-cursor scan because the declared entry order is what
// determines where one map ends and the next begins.
func assembleMaps(r io.ReadSeeker, dir []DirectoryEntry) ([]MapData, error) {
	var maps []MapData

	i := 0
	for i < len(dir) {
		d := dir[i]
		if !d.IsMapMarker() {
			i++
			continue
		}

		lumps := make(map[string]DirectoryEntry)
		i++
		for i < len(dir) {
			if _, ok := mapLumpNames[dir[i].Name]; !ok {
				break
			}
			lumps[dir[i].Name] = dir[i]
			i++
		}

		m, err := decodeMap(r, d.Name, lumps)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	// The scan above yields maps in directory order, which is not stable
	// across tools that rebuild WADs. Sort by name for reproducible output.
	sort.SliceStable(maps, func(a, b int) bool {
		return maps[a].Name < maps[b].Name
	})
	return maps, nil
}

// decodeMap decodes the recognized geometry lumps of one map. A lump that
// is absent from the run decodes to an empty slice; a marker with no run at
// all is a valid map with all-empty lumps.
func decodeMap(r io.ReadSeeker, name string, lumps map[string]DirectoryEntry) (MapData, error) {
	m := MapData{Name: name}
	var err error

	if m.Vertexes, err = decodeLump(r, lumps, "VERTEXES", vertexSize, decodeVertex); err != nil {
		return MapData{}, fmt.Errorf("map %s: %w", name, err)
	}
	if m.LineDefs, err = decodeLump(r, lumps, "LINEDEFS", lineDefSize, decodeLineDef); err != nil {
		return MapData{}, fmt.Errorf("map %s: %w", name, err)
	}
	if m.SideDefs, err = decodeLump(r, lumps, "SIDEDEFS", sideDefSize, decodeSideDef); err != nil {
		return MapData{}, fmt.Errorf("map %s: %w", name, err)
	}
	if m.Sectors, err = decodeLump(r, lumps, "SECTORS", sectorSize, decodeSector); err != nil {
		return MapData{}, fmt.Errorf("map %s: %w", name, err)
	}
	if m.Things, err = decodeLump(r, lumps, "THINGS", thingSize, decodeThing); err != nil {
		return MapData{}, fmt.Errorf("map %s: %w", name, err)
	}
	return m, nil
}

// decodeLump runs the fixed-record decoder for one named lump of the map's
// run, or returns an empty slice when the lump is absent.
func decodeLump[T any](r io.ReadSeeker, lumps map[string]DirectoryEntry, name string, recordSize int, decode func([]byte) (T, error)) ([]T, error) {
	entry, ok := lumps[name]
	if !ok {
		return []T{}, nil
	}
	return decodeRecords(r, entry, recordSize, decode)
}
