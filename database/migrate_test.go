package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_reviews.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestMigrations_ReviewConstraints(t *testing.T) {
	body, err := fs.ReadFile(migrations, migrationsDir+"/00002_create_reviews.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "CHECK (rating BETWEEN 1 AND 5)")
	assert.Contains(t, sql, "REFERENCES users(id) ON DELETE CASCADE")
}

func TestSetup(t *testing.T) {
	assert.NoError(t, setup())
}
