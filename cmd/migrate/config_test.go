package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("MIGRATIONS_DIR", "/custom/migrations")
		assert.Equal(t, "/custom/migrations", migrationsDir())
	})

	t.Run("default", func(t *testing.T) {
		_ = os.Unsetenv("MIGRATIONS_DIR")
		assert.Equal(t, defaultMigrationsDir, migrationsDir())
	})
}

func TestLoadEnvFiles_ExistingEnvWins(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0644))

	t.Setenv("DB_DSN", "from_env")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	loadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
}
