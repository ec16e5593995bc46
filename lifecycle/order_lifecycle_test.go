package lifecycle_test

import (
	"testing"

	"cloud-kitchen-api/lifecycle"
	"cloud-kitchen-api/models"

	"github.com/stretchr/testify/assert"
)

func TestActorStatusSets(t *testing.T) {
	kitchen := []models.OrderStatus{
		models.StatusPending, models.StatusProcessing,
		models.StatusCompleted, models.StatusCancelled,
	}
	riderOnly := []models.OrderStatus{
		models.StatusPicked, models.StatusDelivering, models.StatusDelivered,
	}

	for _, s := range kitchen {
		assert.True(t, lifecycle.KitchenCanSet(s), "kitchen should set %s", s)
		assert.False(t, lifecycle.RiderCanSet(s), "rider must not set %s", s)
	}
	for _, s := range riderOnly {
		assert.True(t, lifecycle.RiderCanSet(s), "rider should set %s", s)
		assert.False(t, lifecycle.KitchenCanSet(s), "kitchen must not set %s", s)
	}

	// assigned is written only by the assign operation
	assert.False(t, lifecycle.KitchenCanSet(models.StatusAssigned))
	assert.False(t, lifecycle.RiderCanSet(models.StatusAssigned))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, lifecycle.IsTerminal(models.StatusDelivered))
	assert.True(t, lifecycle.IsTerminal(models.StatusCompleted))
	assert.True(t, lifecycle.IsTerminal(models.StatusCancelled))
	assert.False(t, lifecycle.IsTerminal(models.StatusPending))
	assert.False(t, lifecycle.IsTerminal(models.StatusDelivering))
}

func TestValidNext(t *testing.T) {
	next := lifecycle.ValidNext(models.StatusPending)
	assert.ElementsMatch(t, []models.OrderStatus{
		models.StatusProcessing, models.StatusAssigned, models.StatusCancelled,
	}, next)

	assert.Empty(t, lifecycle.ValidNext(models.StatusDelivered), "terminal states have no exits")
	assert.Empty(t, lifecycle.ValidNext(models.StatusCancelled))
}
