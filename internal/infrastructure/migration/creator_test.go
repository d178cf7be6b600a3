package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigrationStartsAtOne(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "create income data")
	require.NoError(t, err)

	assert.Equal(t, "000001", mf.Version)
	assert.Equal(t, filepath.Join(dir, "000001_create_income_data.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_create_income_data.down.sql"), mf.DownPath)
	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
}

func TestCreateMigrationContinuesSequence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000003_existing.up.sql"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000003_existing.down.sql"), nil, 0644))

	mf, err := CreateMigration(dir, "add indexes")
	require.NoError(t, err)
	assert.Equal(t, "000004", mf.Version)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"create income data", "create_income_data"},
		{"Add-Indexes", "add_indexes"},
		{"weird!!chars", "weirdchars"},
		{"trailing ", "trailing"},
		{"multi  spaces", "multi_spaces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), tt.in)
	}
}
