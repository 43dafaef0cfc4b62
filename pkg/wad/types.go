// Package wad decodes Doom-engine WAD archives: the lump directory, the
// per-map geometry lumps, and the grouping of directory entries into maps.
// The format is documented on the ZDoom wiki: https://zdoom.org/wiki/WAD
package wad

// Type identifies the archive flavor from the header signature.
type Type int

const (
	// IWAD is a base game archive.
	IWAD Type = iota
	// PWAD is a patch archive layered on top of an IWAD.
	PWAD
)

func (t Type) String() string {
	if t == PWAD {
		return "PWAD"
	}
	return "IWAD"
}

// DirectoryEntry is one named byte range ("lump") in the container.
// A Size of 0 with a positive Offset denotes a marker entry with no data.
type DirectoryEntry struct {
	Name   string
	Offset int32
	Size   int32
}

// IsMapMarker reports whether the entry marks the start of a map's lump run.
func (d DirectoryEntry) IsMapMarker() bool {
	return d.Size == 0 && d.Offset > 0
}

// Vertex is a 2-D map coordinate. Vertexes have no identity of their own;
// they are addressed by index into their map's vertex list.
type Vertex struct {
	X, Y int16
}

// NoSide is the sentinel sidedef index meaning "no side on this face".
// Any negative index is treated the same way.
const NoSide = -1

// LineDef is a wall edge between two vertexes, with up to two faces.
type LineDef struct {
	VertexBegin  int16
	VertexEnd    int16
	Flags        int16
	LineType     int16
	SectorTag    int16
	SidedefRight int16
	SidedefLeft  int16
}

// TwoSided reports whether the line has a face on both sides, i.e. it
// separates two sectors rather than bounding solid wall.
func (l LineDef) TwoSided() bool {
	return l.SidedefRight >= 0 && l.SidedefLeft >= 0
}

// SideDef is a wall face. Texture names are already trimmed; the "-"
// placeholder decodes to the empty string (no texture).
type SideDef struct {
	XOffset       int16
	YOffset       int16
	UpperTexture  string
	LowerTexture  string
	MiddleTexture string
	Sector        uint16
}

// Sector is a room. LightLevel is stored as decoded and may fall outside
// [0,255]; renderers clamp at the point of use.
type Sector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   string
	CeilingTexture string
	LightLevel     int16
	Special        uint16
	Tag            uint16
}

// Thing is an entity placement. It plays no geometric role here; the
// payload is carried through for listings and storage.
type Thing struct {
	X          int16
	Y          int16
	Angle      int16
	TypeCode   int16
	SpawnFlags int16
}

// MapData holds the decoded lumps of one map. It is fully built by map
// assembly and immutable afterwards; cross-indices (vertex, sidedef,
// sector) are only meaningful within the same MapData.
type MapData struct {
	Name     string
	LineDefs []LineDef
	SideDefs []SideDef
	Sectors  []Sector
	Things   []Thing
	Vertexes []Vertex
}
