package directory

import (
	"fmt"
	"slices"
)

// Kind names one filter group for ClearFilter.
type Kind string

const (
	KindQuickText  Kind = "quickText"
	KindDegree     Kind = "degree"
	KindSpecialty  Kind = "specialty"
	KindMinYears   Kind = "minYears"
	KindExpertOnly Kind = "expertOnly"
)

// SetQuickText replaces the free-text query. An empty or blank text disables text matching.
func SetQuickText(s FilterState, text string) FilterState {
	out := s.Canonical()
	out.QuickText = text
	return out
}

// SetExpertOnly turns the expert restriction on or off.
func SetExpertOnly(s FilterState, on bool) FilterState {
	out := s.Canonical()
	out.ExpertOnly = on
	return out
}

// ToggleDegree adds value to the selected degrees, or removes it when already selected.
func ToggleDegree(s FilterState, value string) FilterState {
	out := s.Canonical()
	out.Degrees = toggle(out.Degrees, value)
	return out
}

// ToggleSpecialty adds value to the selected specialties, or removes it when already selected.
func ToggleSpecialty(s FilterState, value string) FilterState {
	out := s.Canonical()
	out.Specialties = toggle(out.Specialties, value)
	return out
}

// SetMinYears sets the minimum years of experience; nil removes the minimum.
// Negative values are treated as 0.
func SetMinYears(s FilterState, n *int) FilterState {
	out := s.Canonical()
	out.MinYears = nil
	if n != nil {
		v := max(*n, 0)
		out.MinYears = &v
	}
	return out
}

// ClearFilter removes value from a multi-valued group, or resets a scalar filter.
// value is ignored for scalar kinds. Unknown kinds leave the state as it is.
func ClearFilter(s FilterState, kind Kind, value string) FilterState {
	out := s.Canonical()
	switch kind {
	case KindDegree:
		out.Degrees = remove(out.Degrees, value)
	case KindSpecialty:
		out.Specialties = remove(out.Specialties, value)
	case KindMinYears:
		out.MinYears = nil
	case KindExpertOnly:
		out.ExpertOnly = false
	case KindQuickText:
		out.QuickText = ""
	}
	return out
}

// ClearAll is the filter drawer's "clear all": every field goes back to its default
// except ExpertOnly, which belongs to the toolbar toggle.
func ClearAll(s FilterState) FilterState {
	return FilterState{ExpertOnly: s.ExpertOnly}
}

// Reset returns the default state with no filter active, expert toggle included.
func Reset() FilterState {
	return FilterState{}
}

// ActionType names a user intent carried by an Action.
type ActionType string

const (
	ActionSetQuickText    ActionType = "setQuickText"
	ActionSetExpertOnly   ActionType = "setExpertOnly"
	ActionToggleDegree    ActionType = "toggleDegree"
	ActionToggleSpecialty ActionType = "toggleSpecialty"
	ActionSetMinYears     ActionType = "setMinYears"
	ActionClearFilter     ActionType = "clearFilter"
	ActionClearAll        ActionType = "clearAll"
	ActionReset           ActionType = "reset"
)

// Action is the serializable form of one transition, as sent by clients.
type Action struct {
	Type     ActionType `json:"type" validate:"required"`
	Value    string     `json:"value,omitempty"`
	Kind     Kind       `json:"kind,omitempty"`
	Enabled  bool       `json:"enabled,omitempty"`
	MinYears *int       `json:"minYears,omitempty" validate:"omitempty,gte=0"`
}

// Apply runs the transition named by a against s.
func Apply(s FilterState, a Action) (FilterState, error) {
	switch a.Type {
	case ActionSetQuickText:
		return SetQuickText(s, a.Value), nil
	case ActionSetExpertOnly:
		return SetExpertOnly(s, a.Enabled), nil
	case ActionToggleDegree:
		return ToggleDegree(s, a.Value), nil
	case ActionToggleSpecialty:
		return ToggleSpecialty(s, a.Value), nil
	case ActionSetMinYears:
		return SetMinYears(s, a.MinYears), nil
	case ActionClearFilter:
		return ClearFilter(s, a.Kind, a.Value), nil
	case ActionClearAll:
		return ClearAll(s), nil
	case ActionReset:
		return Reset(), nil
	}
	return s.Canonical(), fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

// toggle expects a canonical set and returns a new canonical set.
func toggle(set []string, value string) []string {
	if value == "" {
		return set
	}
	if slices.Contains(set, value) {
		return remove(set, value)
	}
	return canonicalSet(append(slices.Clone(set), value))
}

func remove(set []string, value string) []string {
	out := slices.DeleteFunc(slices.Clone(set), func(v string) bool { return v == value })
	if len(out) == 0 {
		return nil
	}
	return out
}
