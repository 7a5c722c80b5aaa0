package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/models"
	"soullink-tracker/testutil"
)

func TestGetConfigFileEndpoint(t *testing.T) {
	_, r := testutil.NewRouter(t)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/configs/routes.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Route 101")

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/configs/passwd", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveConfigFileEndpoint(t *testing.T) {
	env, r := testutil.NewRouter(t)

	w := testutil.DoRaw(t, r, http.MethodPut, "/api/configs/routes.json", "application/json",
		[]byte(`[{"name": "New Route"}]`))
	require.Equal(t, http.StatusOK, w.Code)

	// The save reloads the cache, new pickers appear immediately.
	assert.Equal(t, []string{"New Route"}, env.Cache.RouteNames())
}

func TestSaveConfigFileRejectsInvalidJSON(t *testing.T) {
	env, r := testutil.NewRouter(t)

	w := testutil.DoRaw(t, r, http.MethodPut, "/api/configs/routes.json", "application/json",
		[]byte(`{"name": "not an array"`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.DoRaw(t, r, http.MethodPut, "/api/configs/unknown.json", "application/json",
		[]byte(`[]`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, []string{"Route 101", "Route 102"}, env.Cache.RouteNames())
}

func TestReloadConfigsEndpoint(t *testing.T) {
	env, r := testutil.NewRouter(t)

	// Edit the file behind the cache's back, then ask for a reload.
	w := testutil.DoRaw(t, r, http.MethodPut, "/api/configs/pokemon_names.json", "application/json",
		[]byte(`[{"name": "Mew"}]`))
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/configs/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Mew"}, env.Cache.PokemonNames())

	var snap models.Snapshot
	data := testutil.DoJSON(t, r, http.MethodGet, "/api/data", nil)
	require.Equal(t, http.StatusOK, data.Code)
	testutil.DecodeJSON(t, data, &snap)
	assert.Equal(t, []string{"Mew"}, snap.AllPokemonNames)
}
