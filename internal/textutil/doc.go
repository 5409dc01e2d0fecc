// Package textutil normalizes license text into word tokens.
//
// Tokenization lowercases text with full Unicode case mapping, deletes every
// rune that is neither a word character (letter, number, underscore) nor
// whitespace, and splits the remainder on whitespace runs. Punctuation inside
// a word is removed rather than treated as a separator, so "don't" becomes
// the single token "dont".
package textutil
