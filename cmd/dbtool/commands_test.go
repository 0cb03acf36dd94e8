package main

import (
	"boulderhall-service/internal/app"
	"boulderhall-service/internal/config"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const hallsJSON = `[
	{"name": "Monk Utrecht", "city": "Utrecht", "province": "Utrecht", "latitude": 52.09, "longitude": 5.12},
	{"name": "Klimmuur Breda", "city": "Breda", "province": "Noord-Brabant", "latitude": 51.59, "longitude": 4.78},
	{"name": "Monk Amsterdam", "city": "Amsterdam", "province": "Noord-Holland", "latitude": 52.37, "longitude": 4.89},
	{"name": "Delfts Bouldercentrum", "city": "Delft", "province": "Zuid-Holland", "latitude": 52.01, "longitude": 4.36}
]`

// setupEnv points the configuration at a temp halls file and SQLite database.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	hallsPath := filepath.Join(dir, "halls.json")
	require.NoError(t, os.WriteFile(hallsPath, []byte(hallsJSON), 0o600))

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("HALLS_SOURCE", "file")
	t.Setenv("HALLS_FILE", hallsPath)
	t.Setenv("FAVORITES_STORE", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "app.db"))
	t.Setenv("LOCATION_PROVIDER", "denied")
	t.Setenv("RATING_MODE", "stable")
	return hallsPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitSchema(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "init-schema")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema ready (sqlite")
}

func TestFavoritesToggleAndList(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "favorites", "toggle", "Monk Utrecht")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Monk Utrecht"`)

	out, err = execute(t, "favorites", "list")
	require.NoError(t, err)
	assert.Equal(t, "Monk Utrecht\n", out)

	out, err = execute(t, "favorites", "toggle", "Monk Utrecht")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed "Monk Utrecht"`)

	out, err = execute(t, "favorites", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNearby(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "nearby", "--lat", "52.1326", "--lon", "5.2913")
	require.NoError(t, err)
	assert.Contains(t, out, "From 52.1326, 5.2913\n")
	assert.Contains(t, out, "1. Monk Utrecht, Utrecht  12.6 km")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4, "origin line plus three halls")

	out, err = execute(t, "nearby")
	require.NoError(t, err)
	assert.Contains(t, out, "(fallback)")

	_, err = execute(t, "nearby", "--lat", "52")
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "search", "holland")
	require.NoError(t, err)
	assert.Contains(t, out, "2 halls found")
	assert.Contains(t, out, "Monk Amsterdam")
	assert.Contains(t, out, "Delfts Bouldercentrum")

	_, err = execute(t, "favorites", "toggle", "Klimmuur Breda")
	require.NoError(t, err)

	out, err = execute(t, "search", "--favorites")
	require.NoError(t, err)
	assert.Equal(t, "1 halls found\n* Klimmuur Breda, Breda (Noord-Brabant)\n", out)
}

func TestSeedHallsServesOffline(t *testing.T) {
	hallsPath := setupEnv(t)

	seed := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(hallsJSON), 0o600))

	out, err := execute(t, "seed-halls", seed)
	require.NoError(t, err)
	assert.Equal(t, "Seeded 4 halls.\n", out)

	require.NoError(t, os.Remove(hallsPath))
	out, err = execute(t, "search")
	require.NoError(t, err)
	assert.Contains(t, out, "4 halls found")
}

func TestSeedHallsRequiresSnapshot(t *testing.T) {
	setupEnv(t)
	t.Setenv("HALLS_SNAPSHOT", "false")

	_, err := execute(t, "seed-halls", "missing.json")
	require.Error(t, err)
}

func TestFailingCommandStillClosesApp(t *testing.T) {
	setupEnv(t)
	cfg, _, err := config.Load()
	require.NoError(t, err)

	a, err := app.Build(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	conn, err := a.SQLite()
	require.NoError(t, err)
	require.NoError(t, conn.Ping())

	c := &cli{app: a}
	runErr := errors.New("boom")
	run := c.closing(func(*cobra.Command, []string) error { return runErr })

	require.ErrorIs(t, run(&cobra.Command{}, nil), runErr)
	assert.Nil(t, c.app)
	require.Error(t, conn.Ping(), "database is closed")
}

func TestFailingSubcommandReturnsError(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "favorites", "toggle", "   ")
	require.Error(t, err)
}
