package wad

import "errors"

// Sentinel errors for the decode taxonomy. Callers match with errors.Is; the
// wrapped message carries the lump name, entry index and byte offset needed
// to diagnose the failure.
var (
	// ErrInvalidSignature is returned when the container's 4-byte signature
	// is neither "IWAD" nor "PWAD".
	ErrInvalidSignature = errors.New("invalid WAD signature")

	// ErrFormat is returned for structural decode failures: a name field
	// that is not valid text, or a cross-reference index that is out of
	// range for its target list.
	ErrFormat = errors.New("format error")

	// ErrMalformedLump is returned when a lump's byte size is not an exact
	// multiple of its record size.
	ErrMalformedLump = errors.New("malformed lump")

	// ErrMapNotFound is returned when a requested map name is absent from
	// the assembled map list.
	ErrMapNotFound = errors.New("map not found")
)
