package storage

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_scraper/migrations"
)

func TestLoadMigrations_Ordered(t *testing.T) {
	fsys := fstest.MapFS{
		"db/010_later.up.sql":   {Data: []byte("SELECT 10;")},
		"db/002_second.up.sql":  {Data: []byte("SELECT 2;")},
		"db/001_first.up.sql":   {Data: []byte("SELECT 1;")},
		"db/001_first.down.sql": {Data: []byte("SELECT -1;")},
		"db/README.md":          {Data: []byte("notes")},
	}

	got, err := LoadMigrations(fsys, "db")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{got[0].Version, got[1].Version, got[2].Version})
	assert.Equal(t, "SELECT 2;", got[1].SQL)
}

func TestLoadMigrations_InvalidName(t *testing.T) {
	fsys := fstest.MapFS{"db/first.up.sql": {Data: []byte("SELECT 1;")}}

	_, err := LoadMigrations(fsys, "db")
	assert.ErrorContains(t, err, "first.up.sql")
}

func TestLoadMigrations_Embedded(t *testing.T) {
	pg, err := LoadMigrations(migrations.Postgres, "postgres")
	require.NoError(t, err)
	lite, err := LoadMigrations(migrations.SQLite, "sqlite")
	require.NoError(t, err)

	assert.Len(t, pg, 2)
	assert.Len(t, lite, len(pg))
}
