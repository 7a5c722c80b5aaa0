package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/models"
	"soullink-tracker/services"
	"soullink-tracker/testutil"
)

func TestMilestonesAreSeeded(t *testing.T) {
	env := testutil.NewEnv(t)

	var orders []models.GlobalOrder
	require.NoError(t, env.DB.DB().Order("order_number ASC").Find(&orders).Error)
	require.Len(t, orders, 13)
	for i, order := range orders {
		assert.Equal(t, i+1, order.OrderNumber)
		assert.False(t, order.IsObtained)
	}
}

func TestToggleFlipsAndFlipsBack(t *testing.T) {
	env := testutil.NewEnv(t)
	milestones := services.NewMilestoneService(env.DB)

	obtained, err := milestones.Toggle(3)
	require.NoError(t, err)
	assert.True(t, obtained)

	obtained, err = milestones.Toggle(3)
	require.NoError(t, err)
	assert.False(t, obtained, "toggling twice returns to the original state")
}

func TestToggleUnknownMilestone(t *testing.T) {
	env := testutil.NewEnv(t)
	milestones := services.NewMilestoneService(env.DB)

	_, err := milestones.Toggle(99)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Still not found after other milestones changed.
	_, err = milestones.Toggle(1)
	require.NoError(t, err)
	_, err = milestones.Toggle(99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
