package wad

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	headerSize = 12
	entrySize  = 16
)

// Archive is a fully decoded WAD container: its directory and the maps
// assembled from it. The backing file is read once during Open and not
// retained.
type Archive struct {
	Type      Type
	Directory []DirectoryEntry
	Maps      []MapData
}

// Open reads and decodes the WAD archive at path. The file handle is owned
// exclusively for the duration of the decode and closed before returning.
func Open(path string, logger *slog.Logger) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f, logger)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return a, nil
}

// Decode decodes a WAD container from r. All reads are plain blocking
// seeks/reads; nothing is cached beyond the returned Archive.
func Decode(r io.ReadSeeker, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}

	typ, count, dirOffset, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("Decoded WAD header", "type", typ.String(), "lumps", count, "directoryOffset", dirOffset)

	dir, err := decodeDirectory(r, dirOffset, count)
	if err != nil {
		return nil, err
	}

	maps, err := assembleMaps(r, dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Assembled maps", "count", len(maps))

	return &Archive{Type: typ, Directory: dir, Maps: maps}, nil
}

// Map returns the map with the given name.
func (a *Archive) Map(name string) (*MapData, error) {
	for i := range a.Maps {
		if a.Maps[i].Name == name {
			return &a.Maps[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
}

// decodeHeader reads the fixed 12-byte header: 4-byte signature, int32 LE
// lump count, int32 LE directory offset.
func decodeHeader(r io.ReadSeeker) (Type, int32, int32, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, 0, fmt.Errorf("seeking to header: %w", err)
	}
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, 0, 0, fmt.Errorf("reading header: %w", err)
	}

	var typ Type
	switch string(buf[0:4]) {
	case "IWAD":
		typ = IWAD
	case "PWAD":
		typ = PWAD
	default:
		return 0, 0, 0, fmt.Errorf("%w: got %q, want \"IWAD\" or \"PWAD\"", ErrInvalidSignature, buf[0:4])
	}

	count := int32(binary.LittleEndian.Uint32(buf[4:8]))
	dirOffset := int32(binary.LittleEndian.Uint32(buf[8:12]))
	return typ, count, dirOffset, nil
}

// decodeDirectory reads numEntries fixed 16-byte records starting at
// offset: int32 LE lump offset, int32 LE lump size, 8-byte name.
func decodeDirectory(r io.ReadSeeker, offset, numEntries int32) ([]DirectoryEntry, error) {
	entries := make([]DirectoryEntry, 0, numEntries)
	buf := make([]byte, entrySize)
	for i := int32(0); i < numEntries; i++ {
		entryOffset := int64(offset) + int64(i)*entrySize
		if _, err := r.Seek(entryOffset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking to directory entry %d at offset %d: %w", i, entryOffset, err)
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("reading directory entry %d at offset %d: %w", i, entryOffset, err)
		}

		name, err := trimName8(buf[8:16])
		if err != nil {
			return nil, fmt.Errorf("directory entry %d at offset %d: %w", i, entryOffset, err)
		}
		entries = append(entries, DirectoryEntry{
			Name:   name,
			Offset: int32(binary.LittleEndian.Uint32(buf[0:4])),
			Size:   int32(binary.LittleEndian.Uint32(buf[4:8])),
		})
	}
	return entries, nil
}
