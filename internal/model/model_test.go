package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "archives", (&Archive{}).TableName())
	assert.Equal(t, "map_records", (&MapRecord{}).TableName())
	assert.Equal(t, "sector_records", (&SectorRecord{}).TableName())
	assert.Equal(t, "thing_records", (&ThingRecord{}).TableName())
}

func TestDatabaseModelsComplete(t *testing.T) {
	assert.Len(t, DatabaseModels, 4)
}
