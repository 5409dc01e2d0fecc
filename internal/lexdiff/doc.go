// Package lexdiff compares the vocabularies of a group of license texts.
//
// For each member the text is tokenized and reduced to its distinct tokens.
// A token's presence count is the number of members whose text contains it
// at least once. Common words are the tokens whose presence count equals the
// number of members in the group, including members whose text could not be
// obtained. One missing text therefore leaves the common list empty; the
// Result names those members in Missing so callers can explain it.
//
// A member's unique words are its tokens, in order and with repeats, that
// are not common. "Unique" means "not shared by every member", not
// "exclusive to this member".
package lexdiff
