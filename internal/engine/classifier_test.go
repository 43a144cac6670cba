package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEmptyUtterance(t *testing.T) {
	c := NewClassifier()

	for _, utterance := range []string{"", "   ", "\n\t"} {
		res := c.Classify(utterance)
		assert.Equal(t, IntentUnclear, res.Intent)
		assert.Zero(t, res.Confidence)
	}
}

func TestClassifyGreetings(t *testing.T) {
	c := NewClassifier()

	for _, utterance := range []string{"ciao", "hello", "hey!", "buongiorno"} {
		res := c.Classify(utterance)
		assert.Equal(t, IntentGreeting, res.Intent, "utterance %q", utterance)
		assert.Greater(t, res.Confidence, 0.0)
	}
}

func TestClassifyItalianLowEnergy(t *testing.T) {
	c := NewClassifier()

	res := c.Classify("sono troppo stanco, non ho energia")
	require.Equal(t, IntentEnergyLow, res.Intent)
	assert.Greater(t, res.Confidence, 0.0)
	// base 0.88 plus the energy-signal boost
	assert.InDelta(t, 0.92, res.Confidence, 1e-9)
}

func TestClassifyKeepsHighestConfidenceAcrossScan(t *testing.T) {
	c := NewClassifier()

	// app_help (0.78) matches first, overwhelm (0.90) later but stronger.
	res := c.Classify("how does this app work? everything is too much")
	assert.Equal(t, IntentOverwhelm, res.Intent)
	assert.InDelta(t, 0.90, res.Confidence, 1e-9)
}

func TestClassifyEqualConfidenceFirstSeenWins(t *testing.T) {
	c := NewClassifier()

	// understanding_check and task_selection both sit at 0.85;
	// understanding_check is earlier in the priority list.
	res := c.Classify("hai capito quale task devo scegliere?")
	assert.Equal(t, IntentUnderstandingCheck, res.Intent)
}

func TestClassifyUrgencyBoostOnTaskSelection(t *testing.T) {
	c := NewClassifier()

	res := c.Classify("quale task faccio prima della scadenza?")
	require.Equal(t, IntentTaskSelection, res.Intent)
	assert.InDelta(t, 0.90, res.Confidence, 1e-9)
}

func TestClassifyFallbackChain(t *testing.T) {
	c := NewClassifier()

	// (a) task vocabulary, no pattern fires
	res := c.Classify("devo chiudere questo lavoro")
	assert.Equal(t, IntentTaskSelection, res.Intent)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)

	// (b) emotional signal only
	res = c.Classify("un po' preoccupato ultimamente")
	assert.Equal(t, IntentEmotionalState, res.Intent)
	assert.InDelta(t, 0.65, res.Confidence, 1e-9)

	// (c) help vocabulary
	res = c.Classify("serve un po' di aiuto qui per favore davvero")
	assert.Equal(t, IntentGreeting, res.Intent)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)

	// (d) short and meaningless
	res = c.Classify("ok bene")
	assert.Equal(t, IntentGreeting, res.Intent)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)

	// (e) long and meaningless
	res = c.Classify("qwerty zxcvb plonk dribble wibble wobble flurp")
	assert.Equal(t, IntentUnclear, res.Intent)
	assert.Zero(t, res.Confidence)
}

func TestClassifyIdempotent(t *testing.T) {
	c := NewClassifier()

	first := c.Classify("sono sopraffatto, troppe cose insieme")
	second := c.Classify("sono sopraffatto, troppe cose insieme")

	assert.Equal(t, first.Intent, second.Intent)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestClassifyConfidenceNeverAboveOne(t *testing.T) {
	c := NewClassifier()

	// task_selection with urgency boost still clamps at 1.0
	res := c.Classify("what should i do, urgent deadline, subito!")
	assert.LessOrEqual(t, res.Confidence, 1.0)
}
