package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedScripts(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, scriptsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(embedMigrations, scriptsDir+"/"+e.Name())
		require.NoError(t, err)

		body := string(data)
		assert.Contains(t, body, "-- +goose Up", e.Name())
		assert.Contains(t, body, "-- +goose Down", e.Name())
	}
}

func TestInitSchemaDefaults(t *testing.T) {
	data, err := fs.ReadFile(embedMigrations, scriptsDir+"/00001_init_schema.sql")
	require.NoError(t, err)
	body := string(data)

	assert.True(t, strings.Contains(body, "DEFAULT 'ABERTO'"))
	assert.True(t, strings.Contains(body, "DEFAULT 'MÉDIA'"))
	assert.True(t, strings.Contains(body, "ON DELETE SET NULL"))
}
