package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsPolicyBoundsTokenCount(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"

	got := Words(4).Apply(text)

	assert.Equal(t, "The quick brown fox", got)
	assert.Len(t, strings.Fields(got), 4)
}

func TestWordsPolicySkipsPunctuation(t *testing.T) {
	got := Words(3).Apply("Hello, world! (Again)")

	assert.Equal(t, "Hello world Again", got)
}

func TestWordsPolicyShortInput(t *testing.T) {
	got := Words(10).Apply("only three words")

	assert.Equal(t, "only three words", got)
}

func TestSentencesPolicyBoundsSentenceCount(t *testing.T) {
	text := "First sentence. Second one! Third? Fourth never ends"

	assert.Equal(t, "First sentence.", Sentences(1).Apply(text))
	assert.Equal(t, "First sentence. Second one!", Sentences(2).Apply(text))
	assert.Equal(t, "First sentence. Second one! Third? Fourth never ends", Sentences(4).Apply(text))
}

func TestSentencesPolicyKeepsPunctuationRuns(t *testing.T) {
	got := Sentences(1).Apply("Really?! You bet. And more.")

	assert.Equal(t, "Really?!", got)
}

func TestSentencesPolicyNoTerminalPunctuation(t *testing.T) {
	// A page with no sentence boundary is a single sentence.
	got := Sentences(1).Apply("heading without punctuation")

	assert.Equal(t, "heading without punctuation", got)
}

func TestPoliciesEmptyInput(t *testing.T) {
	assert.Empty(t, Words(5).Apply(""))
	assert.Empty(t, Sentences(2).Apply(""))
	assert.Empty(t, Sentences(2).Apply("   \n\t "))
}
