package memory

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/model"
)

func testBackend(t *testing.T, compress bool) *Backend {
	t.Helper()
	return New(config.MemoryConfig{
		OutputDir:      t.TempDir(),
		CompressOutput: compress,
	}, nil)
}

func indexFixture(t *testing.T, b *Backend) {
	t.Helper()

	require.NoError(t, b.StartArchive(&model.Archive{
		Path: "/wads/doom.wad",
		Kind: "IWAD",
	}))

	m := &model.MapRecord{
		Name:     "E1M1",
		Vertexes: 4,
		LineDefs: 4,
		SideDefs: 4,
		Sectors:  1,
		Things:   1,
		Width:    64,
		Height:   64,
	}
	require.NoError(t, b.AddMap(m))
	require.NotZero(t, m.ID, "AddMap should assign an ID")

	require.NoError(t, b.AddSector(&model.SectorRecord{
		MapID:       m.ID,
		SectorIndex: 0,
		Light:       144,
		Closed:      true,
		Loops:       datatypes.JSON(`[[[0,0],[0,64],[64,64],[64,0]]]`),
	}))
	require.NoError(t, b.AddThing(&model.ThingRecord{
		MapID: m.ID,
		Code:  1,
		Name:  "Player1Start",
		X:     32,
		Y:     32,
	}))
}

func TestExportJSON(t *testing.T) {
	b := testBackend(t, false)
	require.NoError(t, b.Init())

	indexFixture(t, b)
	require.NoError(t, b.FinishArchive())

	path := b.ExportedFilePath()
	require.NotEmpty(t, path)
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export IndexExport
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "IWAD", export.Kind)
	assert.Equal(t, 1, export.MapCount)
	require.Len(t, export.Maps, 1)

	m := export.Maps[0]
	assert.Equal(t, "E1M1", m.Name)
	require.Len(t, m.Sectors, 1)
	assert.True(t, m.Sectors[0].Closed)
	assert.Equal(t, uint8(144), m.Sectors[0].Light)
	require.Len(t, m.Things, 1)
	assert.Equal(t, "Player1Start", m.Things[0].Name)
}

func TestExportGzip(t *testing.T) {
	b := testBackend(t, true)
	indexFixture(t, b)
	require.NoError(t, b.FinishArchive())

	path := b.ExportedFilePath()
	assert.Equal(t, ".gz", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	var export IndexExport
	require.NoError(t, json.NewDecoder(zr).Decode(&export))
	assert.Equal(t, "/wads/doom.wad", export.Path)
}

func TestRequiresArchiveInProgress(t *testing.T) {
	b := testBackend(t, false)

	assert.Error(t, b.AddMap(&model.MapRecord{Name: "E1M1"}))
	assert.Error(t, b.FinishArchive())
}

func TestRejectsUnknownMapID(t *testing.T) {
	b := testBackend(t, false)
	require.NoError(t, b.StartArchive(&model.Archive{Path: "x.wad", Kind: "PWAD"}))

	assert.Error(t, b.AddSector(&model.SectorRecord{MapID: 99}))
	assert.Error(t, b.AddThing(&model.ThingRecord{MapID: 99}))
}

func TestStartArchiveResetsState(t *testing.T) {
	b := testBackend(t, false)
	indexFixture(t, b)

	require.NoError(t, b.StartArchive(&model.Archive{Path: "other.wad", Kind: "PWAD"}))
	require.NoError(t, b.FinishArchive())

	data, err := os.ReadFile(b.ExportedFilePath())
	require.NoError(t, err)

	var export IndexExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Zero(t, export.MapCount)
	assert.Empty(t, export.Maps)
}
