package services_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/services"
	"soullink-tracker/testutil"
)

func TestBackupArchiveContainsBundleFiles(t *testing.T) {
	env := testutil.NewEnv(t)
	backups := services.NewBackupService(env.Cfg, env.DB, env.Cache)

	var buf bytes.Buffer
	require.NoError(t, backups.WriteArchive(&buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["test.db"])
	assert.True(t, names["routes.json"])
	assert.True(t, names["pokemon_names.json"])
	assert.True(t, names["level_caps.json"])
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)
	routes := services.NewRouteService(env.DB)
	catches := services.NewCatchService(env.DB)
	milestones := services.NewMilestoneService(env.DB)
	snapshots := services.NewSnapshotService(env.DB, env.Cache)
	backups := services.NewBackupService(env.Cfg, env.DB, env.Cache)

	player, err := players.AddPlayer("Ash")
	require.NoError(t, err)
	route, err := routes.AddRoute("Route 101")
	require.NoError(t, err)
	pikachu := "Pikachu"
	require.NoError(t, catches.UpdateCatch(player.ID, route.ID, &pikachu))
	_, err = milestones.Toggle(5)
	require.NoError(t, err)

	before, err := snapshots.Snapshot()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, backups.WriteArchive(&buf))

	// Wreck the state, then restore.
	require.NoError(t, routes.Delete(route.ID))
	_, err = players.AddPlayer("Intruder")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.NoError(t, backups.Restore(zr))

	after, err := snapshots.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func makeZip(t *testing.T, entries map[string]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestRestoreRejectsUnknownEntry(t *testing.T) {
	env := testutil.NewEnv(t)
	backups := services.NewBackupService(env.Cfg, env.DB, env.Cache)

	zr := makeZip(t, map[string]string{"evil.sh": "#!/bin/sh"})
	assert.ErrorIs(t, backups.Restore(zr), services.ErrForbidden)
}

func TestRestoreRejectsPathTraversal(t *testing.T) {
	env := testutil.NewEnv(t)
	backups := services.NewBackupService(env.Cfg, env.DB, env.Cache)

	zr := makeZip(t, map[string]string{"../routes.json": "[]"})
	assert.ErrorIs(t, backups.Restore(zr), services.ErrForbidden)

	zr = makeZip(t, map[string]string{"/etc/routes.json": "[]"})
	assert.ErrorIs(t, backups.Restore(zr), services.ErrForbidden)
}

func TestRestoreWritesNothingOnForbiddenEntry(t *testing.T) {
	env := testutil.NewEnv(t)
	backups := services.NewBackupService(env.Cfg, env.DB, env.Cache)

	// One valid entry next to one forbidden entry: the whole archive
	// is rejected before any file is touched.
	zr := makeZip(t, map[string]string{
		"routes.json": `[{"name": "Overwritten"}]`,
		"evil.sh":     "#!/bin/sh",
	})
	require.ErrorIs(t, backups.Restore(zr), services.ErrForbidden)

	env.Cache.Reload()
	assert.Equal(t, []string{"Route 101", "Route 102"}, env.Cache.RouteNames())
}
