package params

import "sort"

// Section returns the entries of one section as a map from bare key to
// value, with the section prefix stripped. The result is a detached
// snapshot; it does not track later mutation of the store. An unknown
// section yields an empty map, not an error.
func (s *Store) Section(name string) map[string]string {
	out := make(map[string]string)
	for full, value := range s.entries {
		section, key := splitKey(full)
		if section == name {
			out[key] = value
		}
	}
	return out
}

// SectionStore returns a detached store holding one section's entries,
// re-keyed without the section prefix. The result supports the full store
// API, including Save, and shares the source store's filesystem.
func (s *Store) SectionStore(name string) *Store {
	out := NewWithFs(s.fs)
	for key, value := range s.Section(name) {
		out.SetString(key, value)
	}
	return out
}

// SectionNames returns the distinct section names present in the store in
// ascending order. The empty-string section is included if any entry
// belongs to it.
func (s *Store) SectionNames() []string {
	seen := make(map[string]bool)
	for full := range s.entries {
		section, _ := splitKey(full)
		seen[section] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
