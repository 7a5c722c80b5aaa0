package reference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/reference"
)

func newCache(t *testing.T) (*reference.Cache, string) {
	t.Helper()
	dir := t.TempDir()
	cache := reference.NewCache(func(name string) string {
		return filepath.Join(dir, name)
	})
	return cache, dir
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReloadReadsAllLists(t *testing.T) {
	cache, dir := newCache(t)
	write(t, dir, reference.RoutesFile, `[{"name": "Route 1"}, {"name": "Route 2"}]`)
	write(t, dir, reference.PokemonNamesFile, `[{"name": "Mew"}]`)
	write(t, dir, reference.LevelCapsFile,
		`[{"name": "1. Arena", "order_number": 1, "max_level": 14, "adjusted_level": 12}]`)

	cache.Reload()

	assert.Equal(t, []string{"Route 1", "Route 2"}, cache.RouteNames())
	assert.Equal(t, []string{"Mew"}, cache.PokemonNames())
	caps := cache.LevelCaps()
	require.Len(t, caps, 1)
	assert.Equal(t, 14, caps[0].MaxLevel)
	assert.Equal(t, 12, caps[0].AdjustedLevel)
}

func TestReloadCreatesMissingFiles(t *testing.T) {
	cache, dir := newCache(t)

	cache.Reload()

	assert.Empty(t, cache.RouteNames())
	for _, name := range []string{reference.RoutesFile, reference.PokemonNamesFile, reference.LevelCapsFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}

func TestReloadKeepsPreviousValuesOnCorruptFile(t *testing.T) {
	cache, dir := newCache(t)
	write(t, dir, reference.RoutesFile, `[{"name": "Route 1"}]`)
	cache.Reload()
	require.Equal(t, []string{"Route 1"}, cache.RouteNames())

	write(t, dir, reference.RoutesFile, `{broken`)
	cache.Reload()

	assert.Equal(t, []string{"Route 1"}, cache.RouteNames(), "fail soft, keep last good list")
}

func TestLevelCapEntriesWithoutOrderNumberAreSkipped(t *testing.T) {
	cache, dir := newCache(t)
	write(t, dir, reference.LevelCapsFile, `[
		{"name": "1. Arena", "order_number": 1, "max_level": 14, "adjusted_level": 12},
		{"name": "broken entry", "max_level": 20, "adjusted_level": 18}
	]`)

	cache.Reload()

	caps := cache.LevelCaps()
	require.Len(t, caps, 1)
	assert.Equal(t, "1. Arena", caps[0].Name)
}

func TestSaveFileValidatesShape(t *testing.T) {
	cache, _ := newCache(t)

	err := cache.SaveFile("random.txt", []byte("hello"))
	assert.ErrorIs(t, err, reference.ErrUnknownFile)

	err = cache.SaveFile(reference.RoutesFile, []byte(`not json`))
	assert.ErrorIs(t, err, reference.ErrInvalidContent)

	require.NoError(t, cache.SaveFile(reference.RoutesFile, []byte(`[{"name": "Route 1"}]`)))
	cache.Reload()
	assert.Equal(t, []string{"Route 1"}, cache.RouteNames())
}

func TestReadFileRejectsUnknownNames(t *testing.T) {
	cache, _ := newCache(t)

	_, err := cache.ReadFile("../../etc/passwd")
	assert.ErrorIs(t, err, reference.ErrUnknownFile)
}
