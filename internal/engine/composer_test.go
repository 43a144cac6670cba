package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var composerClock = time.Date(2025, 11, 3, 21, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return newDeterministic(42, composerClock)
}

func TestComposeNoActionBelowThreshold(t *testing.T) {
	e := testEngine()

	result := IntentResult{Intent: IntentOverwhelm, Confidence: 0.7}
	comp := e.Compose(result, Context{}, NewProfile(), nil)
	assert.Empty(t, comp.Action, "0.7 is not above the threshold")

	result.Confidence = 0.71
	comp = e.Compose(result, Context{}, NewProfile(), nil)
	assert.Equal(t, "activate_focus_mode", comp.Action)
}

func TestComposeMoodOverride(t *testing.T) {
	e := testEngine()
	mood := &MoodState{Label: MoodFrozen, SuggestedRitual: "three slow breaths"}

	result := IntentResult{Intent: IntentTaskSelection, Confidence: 0.9}
	comp := e.Compose(result, Context{Mood: mood}, NewProfile(), nil)
	assert.Equal(t, moodOverrides[MoodFrozen][IntentTaskSelection], comp.Text)
}

func TestComposeGenericMoodWrapper(t *testing.T) {
	e := testEngine()
	mood := &MoodState{Label: MoodFrozen, SuggestedRitual: "three slow breaths"}

	// no (frozen, break_request) override exists
	result := IntentResult{Intent: IntentBreakRequest, Confidence: 0.86}
	comp := e.Compose(result, Context{Mood: mood}, NewProfile(), nil)

	assert.True(t, strings.HasPrefix(comp.Text, "Considering you feel frozen today, "), comp.Text)
	assert.Contains(t, comp.Text, "Remember: three slow breaths")
}

func TestComposeContextualClausesStack(t *testing.T) {
	e := testEngine()

	ctx := Context{
		TimeOfDay:       "evening",
		EnergyLevel:     2,
		FocusModeActive: true,
		ActiveTaskCount: 8,
	}
	result := IntentResult{Intent: IntentOverwhelm, Confidence: 0.9}
	comp := e.Compose(result, ctx, NewProfile(), nil)

	assert.Contains(t, comp.Text, clauseLateLowEnergy)
	assert.Contains(t, comp.Text, clauseFocusOverwhelm)
	assert.Contains(t, comp.Text, clauseManyTasks)
}

func TestComposeLateLowEnergyClause(t *testing.T) {
	e := testEngine()

	result := IntentResult{Intent: IntentEnergyLow, Confidence: 0.88}
	comp := e.Compose(result, Context{TimeOfDay: "night"}, NewProfile(), nil)
	assert.Contains(t, comp.Text, clauseLateLowEnergy)

	// morning: clause must not fire
	comp = e.Compose(result, Context{TimeOfDay: "morning"}, NewProfile(), nil)
	assert.NotContains(t, comp.Text, clauseLateLowEnergy)
}

func TestComposeBehaviorInjectionOnSuggestions(t *testing.T) {
	e := testEngine()

	profile := NewProfile()
	profile.RecordOutcome(Task{Type: TypeCreative}, 20, true, composerClock)

	result := IntentResult{Intent: IntentTaskSelection, Confidence: 0.9}
	comp := e.Compose(result, Context{}, profile, nil)
	assert.Contains(t, comp.Text, "creative work has been going well for you")

	// a fresh profile must not change the reply
	comp = e.Compose(result, Context{}, NewProfile(), nil)
	assert.NotContains(t, comp.Text, "going well for you")
}

func TestComposeBehaviorInjectionOnProgress(t *testing.T) {
	e := testEngine()
	result := IntentResult{Intent: IntentProgressCheck, Confidence: 0.8}

	profile := NewProfile()
	profile.CompletionRate = 0.8
	comp := e.Compose(result, Context{}, profile, nil)
	assert.Contains(t, comp.Text, behaviorStrongFinisher)

	profile.CompletionRate = 0.3
	comp = e.Compose(result, Context{}, profile, nil)
	assert.NotContains(t, comp.Text, behaviorStrongFinisher)
}

func TestNoTasksReplyIsMoodAware(t *testing.T) {
	assert.Equal(t, noTasksDefault, NoTasksReply(nil))
	assert.Equal(t, noTasksByMood[MoodFrozen], NoTasksReply(&MoodState{Label: MoodFrozen}))
}

func TestComposePicksFromIntentTemplates(t *testing.T) {
	e := testEngine()

	result := IntentResult{Intent: IntentGreeting, Confidence: 0.9}
	comp := e.Compose(result, Context{}, NewProfile(), nil)
	assert.Contains(t, responseTemplates[IntentGreeting], comp.Text)
}
