package grouping

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// nameSuffix is appended to a cleaned prefix to build a group's display name.
const nameSuffix = "-Like"

// Group is a family of license identifiers sharing a prefix.
type Group struct {
	Prefix  string
	Name    string
	Members []string
}

// Prefix returns the part of id before its first hyphen, or id itself when
// it has none.
func Prefix(id string) string {
	if idx := strings.IndexByte(id, '-'); idx >= 0 {
		return id[:idx]
	}
	return id
}

// DisplayName derives a readable group name from a prefix: digit runs are
// removed, surrounding hyphens and spaces trimmed, and "-Like" appended.
func DisplayName(prefix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, prefix)
	return strings.Trim(cleaned, "- ") + nameSuffix
}

// ByPrefix groups ids by Prefix. Repeated ids are counted once. Only groups
// with two or more members are returned.
func ByPrefix(ids []string) []Group {
	order := make([]string, 0)
	members := make(map[string][]string)
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		prefix := Prefix(id)
		if _, ok := members[prefix]; !ok {
			order = append(order, prefix)
		}
		members[prefix] = append(members[prefix], id)
	}

	groups := make([]Group, 0, len(order))
	for _, prefix := range order {
		list := members[prefix]
		if len(list) < 2 {
			continue
		}
		groups = append(groups, Group{
			Prefix:  prefix,
			Name:    DisplayName(prefix),
			Members: list,
		})
	}
	return groups
}

// ValidatePatterns reports the first pattern that is not valid glob syntax.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	return nil
}

// Filter keeps groups whose name, prefix, or any member matches one of the
// glob patterns. With no patterns every group is kept.
func Filter(groups []Group, patterns []string) ([]Group, error) {
	if len(patterns) == 0 {
		return groups, nil
	}
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}

	kept := make([]Group, 0, len(groups))
	for _, group := range groups {
		if matchesAny(group, patterns) {
			kept = append(kept, group)
		}
	}
	return kept, nil
}

func matchesAny(group Group, patterns []string) bool {
	candidates := make([]string, 0, len(group.Members)+2)
	candidates = append(candidates, group.Name, group.Prefix)
	candidates = append(candidates, group.Members...)
	for _, pattern := range patterns {
		for _, candidate := range candidates {
			// Patterns were validated up front.
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}
