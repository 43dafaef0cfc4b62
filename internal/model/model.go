// Package model defines the database schema for indexed level archives.
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels is a list of all the structs exported here which represent
// tables in the database schema
var DatabaseModels = []interface{}{
	&Archive{},
	&MapRecord{},
	&SectorRecord{},
	&ThingRecord{},
}

// Archive is one indexed WAD file.
type Archive struct {
	gorm.Model
	Path      string    `json:"path" gorm:"size:511"`
	Kind      string    `json:"kind" gorm:"size:7"` // IWAD or PWAD
	MapCount  int       `json:"mapCount"`
	IndexedAt time.Time `json:"indexedAt"`
}

func (*Archive) TableName() string {
	return "archives"
}

// MapRecord is one map inside an archive, with its lump counts and the
// render-space extent of its geometry.
type MapRecord struct {
	gorm.Model
	ArchiveID uint    `json:"archiveId" gorm:"index:idx_maprecord_archive_id"`
	Archive   Archive `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:ArchiveID;"`

	Name       string `json:"name" gorm:"size:8;index:idx_maprecord_name"`
	Vertexes   int    `json:"vertexes"`
	LineDefs   int    `json:"lineDefs"`
	SideDefs   int    `json:"sideDefs"`
	Sectors    int    `json:"sectors"`
	Things     int    `json:"things"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Degenerate int    `json:"degenerate"` // sectors whose boundary did not close
}

func (*MapRecord) TableName() string {
	return "map_records"
}

// SectorRecord is one reconstructed sector boundary. Loops holds the
// boundary polygons as JSON: an array of loops, each an array of [x, y]
// pairs in render space.
type SectorRecord struct {
	gorm.Model
	MapID uint      `json:"mapId" gorm:"index:idx_sectorrecord_map_id"`
	Map   MapRecord `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:MapID;"`

	SectorIndex int            `json:"sectorIndex"`
	Light       uint8          `json:"light"`
	Closed      bool           `json:"closed"`
	Loops       datatypes.JSON `json:"loops"`
}

func (*SectorRecord) TableName() string {
	return "sector_records"
}

// ThingRecord is one placed object inside a map.
type ThingRecord struct {
	gorm.Model
	MapID uint      `json:"mapId" gorm:"index:idx_thingrecord_map_id"`
	Map   MapRecord `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:MapID;"`

	Code  int16  `json:"code"`
	Name  string `json:"name" gorm:"size:63"`
	X     int16  `json:"x"`
	Y     int16  `json:"y"`
	Angle int16  `json:"angle"`
}

func (*ThingRecord) TableName() string {
	return "thing_records"
}
