package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_String(t *testing.T) {
	tests := []struct {
		state    Lifecycle
		expected string
	}{
		{Constructed, "Constructed"},
		{Loaded, "Loaded"},
		{Entered, "Entered"},
		{Exited, "Exited"},
		{Destroyed, "Destroyed"},
		{Lifecycle(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestLifecycleConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Lifecycle(0), Constructed)
	assert.Equal(t, Lifecycle(1), Loaded)
	assert.Equal(t, Lifecycle(2), Entered)
	assert.Equal(t, Lifecycle(3), Exited)
	assert.Equal(t, Lifecycle(4), Destroyed)
}

func TestLifecycle_CanTransition(t *testing.T) {
	all := []Lifecycle{Constructed, Loaded, Entered, Exited, Destroyed}
	allowed := map[[2]Lifecycle]bool{
		{Constructed, Loaded}: true,
		{Loaded, Entered}:     true,
		{Entered, Exited}:     true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Lifecycle{from, to}] || to == Destroyed
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestLifecycle_Updatable(t *testing.T) {
	assert.True(t, Entered.Updatable())
	assert.False(t, Loaded.Updatable())
	assert.False(t, Exited.Updatable())
}
