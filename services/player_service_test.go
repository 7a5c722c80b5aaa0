package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/models"
	"soullink-tracker/services"
	"soullink-tracker/testutil"
)

func TestAddPlayer(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)

	player, err := players.AddPlayer("Ash")
	require.NoError(t, err)
	assert.NotZero(t, player.ID)
	assert.Equal(t, "Ash", player.Name)
}

func TestAddPlayerEmptyName(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)

	_, err := players.AddPlayer("")
	assert.ErrorIs(t, err, services.ErrBadRequest)
}

func TestAddPlayerDuplicate(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)

	_, err := players.AddPlayer("Ash")
	require.NoError(t, err)

	_, err = players.AddPlayer("Ash")
	assert.ErrorIs(t, err, services.ErrConflict)

	var count int64
	require.NoError(t, env.DB.DB().Model(&models.Player{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed insert must not change row counts")
}

func TestAddPlayerNameIsCaseSensitive(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)

	_, err := players.AddPlayer("Ash")
	require.NoError(t, err)

	_, err = players.AddPlayer("ash")
	assert.NoError(t, err, "duplicate check is exact-match")
}

func TestAddPlayerCreatesCatchSlotsForExistingRoutes(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)
	routes := services.NewRouteService(env.DB)

	r1, err := routes.AddRoute("Route 101")
	require.NoError(t, err)
	r2, err := routes.AddRoute("Route 102")
	require.NoError(t, err)

	player, err := players.AddPlayer("Ash")
	require.NoError(t, err)

	var catches []models.PokemonCatch
	require.NoError(t, env.DB.DB().Where("player_id = ?", player.ID).Find(&catches).Error)
	require.Len(t, catches, 2)

	seen := map[uint]bool{}
	for _, c := range catches {
		assert.Nil(t, c.PokemonName, "new slots start uncaught")
		seen[c.RouteID] = true
	}
	assert.True(t, seen[r1.ID])
	assert.True(t, seen[r2.ID])
}

// The cross-product invariant: after any sequence of AddPlayer and
// AddRoute calls, the catch slots equal players x routes exactly.
func TestCatchSlotsStayCrossProduct(t *testing.T) {
	env := testutil.NewEnv(t)
	players := services.NewPlayerService(env.DB)
	routes := services.NewRouteService(env.DB)

	steps := []struct {
		player string
		route  string
	}{
		{player: "Ash"},
		{route: "Route 101"},
		{route: "Route 102"},
		{player: "Misty"},
		{player: "Brock"},
		{route: "Viridian Forest"},
	}

	playerCount, routeCount := 0, 0
	for _, step := range steps {
		if step.player != "" {
			_, err := players.AddPlayer(step.player)
			require.NoError(t, err)
			playerCount++
		} else {
			_, err := routes.AddRoute(step.route)
			require.NoError(t, err)
			routeCount++
		}

		var count int64
		require.NoError(t, env.DB.DB().Model(&models.PokemonCatch{}).Count(&count).Error)
		assert.EqualValues(t, playerCount*routeCount, count)
	}
}
