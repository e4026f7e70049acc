package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusPreparing))
	assert.True(t, CanTransition(StatusPreparing, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusPickedUp))

	// No cancelling once the kitchen started, no skipping ahead.
	assert.False(t, CanTransition(StatusPreparing, StatusCancelled))
	assert.False(t, CanTransition(StatusPending, StatusReady))
	assert.False(t, CanTransition(StatusPickedUp, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusPickedUp))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, "size", NormalizeType("size"))
	assert.Equal(t, "size", NormalizeType("Size"))
	assert.Equal(t, "sauce", NormalizeType("SAUCE"))
	assert.Equal(t, "topping", NormalizeType("Topping"))
	assert.Equal(t, "other", NormalizeType(""))
	assert.Equal(t, "other", NormalizeType("misc"))
}
