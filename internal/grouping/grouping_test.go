package grouping

import (
	"reflect"
	"testing"
)

func TestByPrefixExample(t *testing.T) {
	groups := ByPrefix([]string{"MIT", "MIT-0", "Apache-2.0", "Apache-1.1"})

	want := []Group{
		{Prefix: "MIT", Name: "MIT-Like", Members: []string{"MIT", "MIT-0"}},
		{Prefix: "Apache", Name: "Apache-Like", Members: []string{"Apache-2.0", "Apache-1.1"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Fatalf("ByPrefix = %#v, want %#v", groups, want)
	}
}

func TestByPrefixDropsSingletons(t *testing.T) {
	groups := ByPrefix([]string{"0BSD", "Zlib", "GPL-2.0-only", "Beerware", "GPL-3.0-or-later"})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %#v", len(groups), groups)
	}
	if groups[0].Name != "GPL-Like" {
		t.Fatalf("unexpected group name %q", groups[0].Name)
	}
}

func TestByPrefixMembershipIsDisjoint(t *testing.T) {
	ids := []string{
		"GPL-1.0", "LGPL-2.1", "GPL-2.0", "AGPL-3.0", "LGPL-3.0",
		"CC-BY-4.0", "CC0-1.0", "CC-BY-SA-3.0", "GPL-2.0", "AGPL-1.0",
		"X11", "X11-distribute-modifications-variant",
	}
	groups := ByPrefix(ids)

	seen := map[string]string{}
	for _, group := range groups {
		if len(group.Members) < 2 {
			t.Fatalf("group %q emitted with %d members", group.Name, len(group.Members))
		}
		for _, member := range group.Members {
			if other, ok := seen[member]; ok {
				t.Fatalf("%s appears in %q and %q", member, other, group.Name)
			}
			seen[member] = group.Name
			if Prefix(member) != group.Prefix {
				t.Fatalf("%s has prefix %q, grouped under %q", member, Prefix(member), group.Prefix)
			}
		}
	}

	// Every prefix shared by two or more distinct ids forms a group.
	counts := map[string]map[string]struct{}{}
	for _, id := range ids {
		p := Prefix(id)
		if counts[p] == nil {
			counts[p] = map[string]struct{}{}
		}
		counts[p][id] = struct{}{}
	}
	emitted := map[string]bool{}
	for _, group := range groups {
		emitted[group.Prefix] = true
	}
	for prefix, set := range counts {
		if want := len(set) >= 2; emitted[prefix] != want {
			t.Fatalf("prefix %q: emitted=%v, want %v", prefix, emitted[prefix], want)
		}
	}
}

func TestByPrefixEmpty(t *testing.T) {
	if groups := ByPrefix(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %#v", groups)
	}
}

func TestPrefix(t *testing.T) {
	tests := map[string]string{
		"MIT":                  "MIT",
		"MIT-0":                "MIT",
		"BSD-3-Clause-Clear":   "BSD",
		"-leading":             "",
		"LicenseRef-scancode1": "LicenseRef",
	}
	for id, want := range tests {
		if got := Prefix(id); got != want {
			t.Errorf("Prefix(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"MIT":    "MIT-Like",
		"0BSD":   "BSD-Like",
		"X11":    "X-Like",
		"CC0":    "CC-Like",
		"OLDAP":  "OLDAP-Like",
		"389":    "-Like",
		" Foo2 ": "Foo-Like",
	}
	for prefix, want := range tests {
		if got := DisplayName(prefix); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", prefix, got, want)
		}
	}
}

func TestFilter(t *testing.T) {
	groups := ByPrefix([]string{"MIT", "MIT-0", "GPL-2.0", "GPL-3.0", "BSD-2-Clause", "BSD-3-Clause"})

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"no patterns keeps all", nil, []string{"MIT-Like", "GPL-Like", "BSD-Like"}},
		{"by name", []string{"GPL-*"}, []string{"GPL-Like"}},
		{"by member", []string{"BSD-3-*"}, []string{"BSD-Like"}},
		{"alternatives", []string{"{MIT,BSD}"}, []string{"MIT-Like", "BSD-Like"}},
		{"no match", []string{"Apache*"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, err := Filter(groups, tt.patterns)
			if err != nil {
				t.Fatalf("Filter returned error: %v", err)
			}
			names := make([]string, 0, len(kept))
			for _, g := range kept {
				names = append(names, g.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Fatalf("Filter(%v) = %v, want %v", tt.patterns, names, tt.want)
			}
		})
	}
}

func TestFilterRejectsInvalidPattern(t *testing.T) {
	if _, err := Filter(nil, []string{"GPL-["}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestByPrefixKeepsGroupsWithCollidingNames(t *testing.T) {
	groups := ByPrefix([]string{"GPL-2.0", "GPL-3.0", "GPL2-a", "GPL2-b"})

	want := []Group{
		{Prefix: "GPL", Name: "GPL-Like", Members: []string{"GPL-2.0", "GPL-3.0"}},
		{Prefix: "GPL2", Name: "GPL-Like", Members: []string{"GPL2-a", "GPL2-b"}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Fatalf("ByPrefix = %#v, want %#v", groups, want)
	}
}
