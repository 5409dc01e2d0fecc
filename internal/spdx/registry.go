package spdx

// License is a single catalog entry.
type License struct {
	ID   string `json:"licenseId"`
	Name string `json:"name"`
}

// Registry maps license identifiers to display names, preserving catalog
// order. It is read-only once built.
type Registry struct {
	ids   []string
	names map[string]string
}

// NewRegistry builds a registry from catalog entries. Entries with blank
// identifiers are skipped; repeated identifiers keep their first name.
func NewRegistry(licenses []License) *Registry {
	r := &Registry{
		ids:   make([]string, 0, len(licenses)),
		names: make(map[string]string, len(licenses)),
	}
	for _, license := range licenses {
		if license.ID == "" {
			continue
		}
		if _, dup := r.names[license.ID]; dup {
			continue
		}
		r.ids = append(r.ids, license.ID)
		r.names[license.ID] = license.Name
	}
	return r
}

// IDs returns the identifiers in catalog order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Name returns the display name for id.
func (r *Registry) Name(id string) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.names[id]
	return name, ok
}

// Len returns the number of licenses in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}
