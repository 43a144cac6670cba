package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContextSparse(t *testing.T) {
	ctx := ExtractContext("qwerty zxcvb plonk")
	assert.Empty(t, ctx)

	ctx = ExtractContext("")
	assert.Empty(t, ctx)
}

func TestExtractContextNormalizesByGroupSize(t *testing.T) {
	ctx := ExtractContext("URGENT deadline!!")

	groupSize := len(signalKeywords[SignalUrgency])
	assert.InDelta(t, 2.0/float64(groupSize), ctx[SignalUrgency], 1e-9)

	// no other group fired
	assert.Len(t, ctx, 1)
}

func TestExtractContextMultipleGroups(t *testing.T) {
	ctx := ExtractContext("sono stanco e preoccupato, devo finire entro oggi")

	assert.Greater(t, ctx[SignalEnergy], 0.0)
	assert.Greater(t, ctx[SignalEmotion], 0.0)
	assert.Greater(t, ctx[SignalUrgency], 0.0)

	for _, score := range ctx {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
