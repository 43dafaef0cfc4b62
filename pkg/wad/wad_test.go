package wad

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// containerBuilder assembles a syntactically valid WAD byte container for
// tests: lumps first, directory last, header patched at the end.
type containerBuilder struct {
	signature string
	lumps     []byte
	entries   []DirectoryEntry
}

func newContainer(signature string) *containerBuilder {
	return &containerBuilder{signature: signature}
}

// addLump appends a data lump and its directory entry.
func (c *containerBuilder) addLump(name string, payload []byte) *containerBuilder {
	c.entries = append(c.entries, DirectoryEntry{
		Name:   name,
		Offset: int32(headerSize + len(c.lumps)),
		Size:   int32(len(payload)),
	})
	c.lumps = append(c.lumps, payload...)
	return c
}

// addMarker appends a zero-size entry with a positive offset.
func (c *containerBuilder) addMarker(name string) *containerBuilder {
	c.entries = append(c.entries, DirectoryEntry{
		Name:   name,
		Offset: int32(headerSize + len(c.lumps)),
		Size:   0,
	})
	return c
}

func (c *containerBuilder) build() []byte {
	dirOffset := headerSize + len(c.lumps)

	buf := make([]byte, 0, dirOffset+len(c.entries)*entrySize)
	buf = append(buf, c.signature...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.entries)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(dirOffset))
	buf = append(buf, c.lumps...)

	for _, e := range c.entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Offset))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Size))
		var name [name8Len]byte
		copy(name[:], e.Name)
		buf = append(buf, name[:]...)
	}
	return buf
}

func (c *containerBuilder) decode(t *testing.T) *Archive {
	t.Helper()
	a, err := Decode(bytes.NewReader(c.build()), nil)
	require.NoError(t, err)
	return a
}

// le16 packs int16 values little-endian.
func le16(vals ...int16) []byte {
	buf := make([]byte, 0, len(vals)*2)
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}
	return buf
}

// name8 pads a string to a fixed 8-byte field.
func name8(s string) []byte {
	var buf [name8Len]byte
	copy(buf[:], s)
	return buf[:]
}

func TestDecodeMinimalContainer(t *testing.T) {
	for _, sig := range []string{"IWAD", "PWAD"} {
		a := newContainer(sig).decode(t)
		assert.Equal(t, sig, a.Type.String())
		assert.Empty(t, a.Directory)
		assert.Empty(t, a.Maps)
	}
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	_, err := Decode(bytes.NewReader(newContainer("WAD2").build()), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("IWAD\x01\x00")), nil)
	require.Error(t, err)
}

func TestDirectoryEntryRoundTrip(t *testing.T) {
	a := newContainer("IWAD").
		addLump("DEMO1", []byte{0xde, 0xad, 0xbe, 0xef}).
		decode(t)

	require.Len(t, a.Directory, 1)
	assert.Equal(t, "DEMO1", a.Directory[0].Name)
	assert.Equal(t, int32(headerSize), a.Directory[0].Offset)
	assert.Equal(t, int32(4), a.Directory[0].Size)
}

func TestDirectoryNameTrimmedAtControlByte(t *testing.T) {
	// "MAP01\0\0\0" must decode to "MAP01".
	c := newContainer("IWAD")
	c.entries = append(c.entries, DirectoryEntry{Name: "MAP01\x00\x00\x00", Offset: 12, Size: 0})
	a, err := Decode(bytes.NewReader(c.build()), nil)
	require.NoError(t, err)
	require.Len(t, a.Directory, 1)
	assert.Equal(t, "MAP01", a.Directory[0].Name)
}

func TestDirectoryRejectsInvalidNameEncoding(t *testing.T) {
	c := newContainer("IWAD")
	c.entries = append(c.entries, DirectoryEntry{Name: "BAD\xff\xfe", Offset: 12, Size: 0})
	_, err := Decode(bytes.NewReader(c.build()), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestMalformedLumpIdentifiesLump(t *testing.T) {
	// 15 bytes is not a multiple of the 14-byte LineDef record.
	a := newContainer("IWAD").
		addMarker("MAP01").
		addLump("LINEDEFS", make([]byte, 15))

	_, err := Decode(bytes.NewReader(a.build()), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLump)
	assert.Contains(t, err.Error(), "LINEDEFS")
	assert.Contains(t, err.Error(), "MAP01")
}
