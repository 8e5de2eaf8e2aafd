package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopfront/internal/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	}
	gdb, err := Connect(cfg)
	require.NoError(t, err)
	return gdb
}
