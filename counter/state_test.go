package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase(t *testing.T) {
	t.Run("terminal phases", func(t *testing.T) {
		assert.False(t, PhaseUninitialized.Terminal())
		assert.False(t, PhaseActive.Terminal())
		assert.True(t, PhaseErrored.Terminal())
		assert.True(t, PhaseCompleted.Terminal())
	})

	t.Run("only an active state accepts actions", func(t *testing.T) {
		for phase, want := range map[Phase]bool{
			PhaseUninitialized: false,
			PhaseActive:        true,
			PhaseErrored:       false,
			PhaseCompleted:     false,
		} {
			assert.Equal(t, want, State{Phase: phase}.Active(), phase.String())
		}
	})
}
