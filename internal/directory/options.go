package directory

import (
	"slices"
	"strings"
)

// DegreeOptions returns the distinct non-empty degrees in store, sorted.
// The result is computed once per store.
func DegreeOptions(store *Store) []string {
	store.deriveOptions()
	return slices.Clone(store.degrees)
}

// SpecialtyOptions returns the distinct non-empty specialties across all records, sorted.
// The result is computed once per store.
func SpecialtyOptions(store *Store) []string {
	store.deriveOptions()
	return slices.Clone(store.specialties)
}

func (s *Store) deriveOptions() {
	s.optionsOnce.Do(func() {
		degrees := make(map[string]struct{})
		specialties := make(map[string]struct{})
		for _, a := range s.records {
			if strings.TrimSpace(a.Degree) != "" {
				degrees[a.Degree] = struct{}{}
			}
			for _, sp := range a.Specialties {
				if strings.TrimSpace(sp) != "" {
					specialties[sp] = struct{}{}
				}
			}
		}
		s.degrees = sortedKeys(degrees)
		s.specialties = sortedKeys(specialties)
	})
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
