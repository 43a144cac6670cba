package moods

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mente-assistant-backend/internal/engine"
)

func TestEveryMoodHasARitual(t *testing.T) {
	for _, label := range []engine.MoodLabel{
		engine.MoodFrozen, engine.MoodDisoriented, engine.MoodFlowing, engine.MoodInspired,
	} {
		assert.NotEmpty(t, RitualFor(label), string(label))
	}
}

func TestStateForCarriesTheRitual(t *testing.T) {
	state := StateFor(engine.MoodFrozen)
	assert.Equal(t, engine.MoodFrozen, state.Label)
	assert.Equal(t, "three slow breaths", state.SuggestedRitual)
}
