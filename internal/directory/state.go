package directory

import (
	"encoding/json"
	"slices"
)

// FilterState describes what the user is currently looking for. It is a plain value:
// the transition functions in controller.go return new states and never modify
// the one they are given.
//
// Degrees and Specialties are sets. They are kept sorted and free of duplicates,
// and are nil when nothing is selected, so equal intents are equal values.
type FilterState struct {
	QuickText   string   `json:"quickText"`
	Degrees     []string `json:"degrees,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	MinYears    *int     `json:"minYears,omitempty" validate:"omitempty,gte=0"`
	ExpertOnly  bool     `json:"expertOnly"`
}

// Canonical returns s with its sets sorted and deduplicated and its slices and
// MinYears pointer copied, so the result shares no memory with s.
func (s FilterState) Canonical() FilterState {
	out := FilterState{
		QuickText:   s.QuickText,
		Degrees:     canonicalSet(s.Degrees),
		Specialties: canonicalSet(s.Specialties),
		ExpertOnly:  s.ExpertOnly,
	}
	if s.MinYears != nil {
		n := max(*s.MinYears, 0)
		out.MinYears = &n
	}
	return out
}

// Equal reports whether s and other describe the same search intent.
func (s FilterState) Equal(other FilterState) bool {
	a, b := s.Canonical(), other.Canonical()
	if a.QuickText != b.QuickText || a.ExpertOnly != b.ExpertOnly {
		return false
	}
	if !slices.Equal(a.Degrees, b.Degrees) || !slices.Equal(a.Specialties, b.Specialties) {
		return false
	}
	if (a.MinYears == nil) != (b.MinYears == nil) {
		return false
	}
	return a.MinYears == nil || *a.MinYears == *b.MinYears
}

// Key is a deterministic encoding of the canonical state, used to memoize filter results.
func (s FilterState) Key() string {
	b, _ := json.Marshal(s.Canonical())
	return string(b)
}

// IsZero reports whether no filter of any kind is active.
func (s FilterState) IsZero() bool {
	return s.Equal(FilterState{})
}

func (s FilterState) hasDegree(value string) bool {
	return slices.Contains(s.Degrees, value)
}

func (s FilterState) hasSpecialty(value string) bool {
	return slices.Contains(s.Specialties, value)
}

func canonicalSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
