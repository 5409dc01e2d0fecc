package lexdiff

import (
	"context"
	"log/slog"

	"spdxdiff/internal/logging"
	"spdxdiff/internal/textutil"
)

// TextSource yields the text for a license identifier, or "" when it is
// unavailable.
type TextSource interface {
	Get(ctx context.Context, id string) string
}

// Result is the lexical comparison of one group.
type Result struct {
	// Common holds tokens present in every member, ordered by first
	// appearance walking members in group order.
	Common []string
	// Unique maps every member to its non-common tokens.
	Unique map[string][]string
	// Missing lists members whose text was empty.
	Missing []string
}

// Differ computes Results, memoizing tokenized texts for its lifetime.
type Differ struct {
	source TextSource
	logger *slog.Logger
	tokens map[string][]string
}

// NewDiffer creates a Differ reading texts from source.
func NewDiffer(source TextSource, logger *slog.Logger) *Differ {
	return &Differ{
		source: source,
		logger: logging.NewComponentLogger(logger, "lexdiff"),
		tokens: make(map[string][]string),
	}
}

// Tokens returns the tokenized text for id, fetching it at most once.
func (d *Differ) Tokens(ctx context.Context, id string) []string {
	if tokens, ok := d.tokens[id]; ok {
		return tokens
	}
	tokens := textutil.Tokenize(d.source.Get(ctx, id))
	d.tokens[id] = tokens
	return tokens
}

// Diff compares the texts of members. Repeated identifiers are counted once.
func (d *Differ) Diff(ctx context.Context, members []string) Result {
	members = distinct(members)
	result := Result{
		Common: []string{},
		Unique: make(map[string][]string, len(members)),
	}

	memberTokens := make(map[string][]string, len(members))
	presence := make(map[string]int)
	for _, id := range members {
		result.Unique[id] = []string{}
		tokens := d.Tokens(ctx, id)
		if len(tokens) == 0 {
			result.Missing = append(result.Missing, id)
			continue
		}
		memberTokens[id] = tokens
		for token := range textutil.TokenSet(tokens) {
			presence[token]++
		}
	}

	common := make(map[string]struct{})
	for _, token := range orderByAppearance(members, memberTokens) {
		if presence[token] == len(members) {
			result.Common = append(result.Common, token)
			common[token] = struct{}{}
		}
	}

	for id, tokens := range memberTokens {
		unique := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if _, ok := common[token]; !ok {
				unique = append(unique, token)
			}
		}
		result.Unique[id] = unique
	}

	if len(result.Missing) > 0 {
		d.logger.Debug("group has unavailable texts",
			logging.Int("members", len(members)),
			logging.Any("missing", result.Missing))
	}
	return result
}

func distinct(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// orderByAppearance lists tokens in the order they first occur walking
// members in order.
func orderByAppearance(members []string, memberTokens map[string][]string) []string {
	var ordered []string
	seen := make(map[string]struct{})
	for _, id := range members {
		for _, token := range memberTokens[id] {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			ordered = append(ordered, token)
		}
	}
	return ordered
}
