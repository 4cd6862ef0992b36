package snippet

import (
	"regexp"
	"strings"
)

var (
	wordRe = regexp.MustCompile(`\w+`)
	// A sentence ends at terminal punctuation followed by whitespace. For a
	// punctuation run ("...", "?!") the match lands on the last mark before
	// the whitespace, so the whole run stays with its sentence.
	sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)
)

// Policy bounds a snippet either by word count or by sentence count.
// Exactly one mode is active; use the Words or Sentences constructors.
type Policy struct {
	words     int
	sentences int
}

func Words(n int) Policy {
	return Policy{words: n}
}

func Sentences(n int) Policy {
	return Policy{sentences: n}
}

func (p Policy) String() string {
	if p.words > 0 {
		return "words"
	}
	return "sentences"
}

// Apply bounds text according to the policy. The result is empty only when
// the input has no extractable content.
func (p Policy) Apply(text string) string {
	if p.words > 0 {
		words := wordRe.FindAllString(text, -1)
		if len(words) > p.words {
			words = words[:p.words]
		}
		return strings.Join(words, " ")
	}

	sentences := splitSentences(text)
	if len(sentences) > p.sentences {
		sentences = sentences[:p.sentences]
	}
	return strings.Join(sentences, " ")
}

func splitSentences(text string) []string {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}

	var out []string
	start := 0
	for _, b := range sentenceEndRe.FindAllStringIndex(t, -1) {
		// b[0]+1 keeps the punctuation mark, the rest of the match is the
		// whitespace separator.
		out = append(out, t[start:b[0]+1])
		start = b[1]
	}
	if start < len(t) {
		out = append(out, t[start:])
	}
	return out
}
