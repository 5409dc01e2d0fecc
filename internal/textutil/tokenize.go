package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize lowercases text, strips non-word punctuation, and splits on
// whitespace. Empty input yields an empty, non-nil slice.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	// Casers carry state, so one is built per call.
	lowered := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case IsWordRune(r):
			b.WriteRune(r)
		case isSeparator(r):
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// IsWordRune reports whether r is a word character: a Unicode letter, a
// Unicode number, or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSeparator reports whether r splits tokens. Besides Unicode white space
// this includes the ASCII information separators U+001C through U+001F.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TokenSet returns the distinct tokens of a sequence.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
