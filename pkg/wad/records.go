package wad

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Fixed record sizes, in bytes. These are properties of the on-disk format,
// not of the Go structs.
const (
	vertexSize  = 4
	lineDefSize = 14
	sideDefSize = 30
	sectorSize  = 26
	thingSize   = 10
)

// decodeRecords is the generic fixed-record reader: it checks that the lump
// size is an exact multiple of recordSize, seeks to the lump, and decodes
// one record per recordSize bytes using decode.
func decodeRecords[T any](r io.ReadSeeker, entry DirectoryEntry, recordSize int, decode func([]byte) (T, error)) ([]T, error) {
	if entry.Size%int32(recordSize) != 0 {
		return nil, fmt.Errorf("%w: lump %s has %d bytes, not a multiple of record size %d",
			ErrMalformedLump, entry.Name, entry.Size, recordSize)
	}
	if _, err := r.Seek(int64(entry.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("lump %s: seeking to offset %d: %w", entry.Name, entry.Offset, err)
	}

	count := int(entry.Size) / recordSize
	records := make([]T, 0, count)
	buf := make([]byte, recordSize)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("lump %s: reading record %d: %w", entry.Name, i, err)
		}
		rec, err := decode(buf)
		if err != nil {
			return nil, fmt.Errorf("lump %s: record %d: %w", entry.Name, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func i16(buf []byte) int16 {
	return int16(binary.LittleEndian.Uint16(buf))
}

func decodeVertex(buf []byte) (Vertex, error) {
	return Vertex{
		X: i16(buf[0:2]),
		Y: i16(buf[2:4]),
	}, nil
}

func decodeLineDef(buf []byte) (LineDef, error) {
	return LineDef{
		VertexBegin:  i16(buf[0:2]),
		VertexEnd:    i16(buf[2:4]),
		Flags:        i16(buf[4:6]),
		LineType:     i16(buf[6:8]),
		SectorTag:    i16(buf[8:10]),
		SidedefRight: i16(buf[10:12]),
		SidedefLeft:  i16(buf[12:14]),
	}, nil
}

func decodeSideDef(buf []byte) (SideDef, error) {
	upper, err := trimTextureName(buf[4:12])
	if err != nil {
		return SideDef{}, err
	}
	lower, err := trimTextureName(buf[12:20])
	if err != nil {
		return SideDef{}, err
	}
	middle, err := trimTextureName(buf[20:28])
	if err != nil {
		return SideDef{}, err
	}
	return SideDef{
		XOffset:       i16(buf[0:2]),
		YOffset:       i16(buf[2:4]),
		UpperTexture:  upper,
		LowerTexture:  lower,
		MiddleTexture: middle,
		Sector:        binary.LittleEndian.Uint16(buf[28:30]),
	}, nil
}

func decodeSector(buf []byte) (Sector, error) {
	floor, err := trimName8(buf[4:12])
	if err != nil {
		return Sector{}, err
	}
	ceiling, err := trimName8(buf[12:20])
	if err != nil {
		return Sector{}, err
	}
	return Sector{
		FloorHeight:    i16(buf[0:2]),
		CeilingHeight:  i16(buf[2:4]),
		FloorTexture:   floor,
		CeilingTexture: ceiling,
		LightLevel:     i16(buf[20:22]),
		Special:        binary.LittleEndian.Uint16(buf[22:24]),
		Tag:            binary.LittleEndian.Uint16(buf[24:26]),
	}, nil
}

func decodeThing(buf []byte) (Thing, error) {
	return Thing{
		X:          i16(buf[0:2]),
		Y:          i16(buf[2:4]),
		Angle:      i16(buf[4:6]),
		TypeCode:   i16(buf[6:8]),
		SpawnFlags: i16(buf[8:10]),
	}, nil
}
