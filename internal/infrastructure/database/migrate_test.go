package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrationFS_DeclaresSchedulingConstraints(t *testing.T) {
	content, err := fs.ReadFile(migrationFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	sql := string(content)
	assert.Contains(t, sql, "uniq_appointments_active_slot")
	assert.Contains(t, sql, "WHERE status <> 'cancelled'")
	assert.Contains(t, sql, "uniq_queue_date_number UNIQUE (queue_date, queue_number)")
}
