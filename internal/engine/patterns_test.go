package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPhraseWordBoundaries(t *testing.T) {
	assert.True(t, containsPhrase("hi there", "hi"))
	assert.False(t, containsPhrase("this is fine", "hi"), "no match inside a longer word")
	assert.True(t, containsPhrase("perché così tardi", "perché"))
}

func TestContainsPhraseMultiWordIsSubstring(t *testing.T) {
	assert.True(t, containsPhrase("ok ma da dove comincio oggi", "da dove comincio"))
	assert.False(t, containsPhrase("da dove", "da dove comincio"))
}

func TestWordBoundariesSplitOnSymbols(t *testing.T) {
	// symbols between letters are separators, not word runes
	assert.True(t, containsPhrase("pausa÷task", "task"))
	assert.True(t, containsPhrase("break?now", "break"))
	assert.False(t, containsPhrase("multitasking", "task"))
}
