package directory

import (
	"strconv"
	"strings"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

// Matches reports whether a satisfies every active filter in s:
//
//   - quick text: the trimmed, lower-cased query is a substring of the first name,
//     last name, city, degree, any one specialty or the years of experience;
//   - expert only: at least advocate.ExpertYears of experience;
//   - degrees: the degree equals one of the selected values exactly;
//   - specialties: some specialty equals some selected value, ignoring case;
//   - minimum years: at least MinYears of experience.
//
// Inactive filters (blank text, empty sets, nil MinYears, ExpertOnly false) match everything.
func Matches(a advocate.Advocate, s FilterState) bool {
	return compile(s).match(a)
}

// Filter returns the records of store that match s, in store order.
func Filter(store *Store, s FilterState) []advocate.Advocate {
	out := make([]advocate.Advocate, 0)
	if store == nil {
		return out
	}
	m := compile(s)
	for _, a := range store.records {
		if m.match(a) {
			out = append(out, a)
		}
	}
	return out
}

// matcher is a FilterState prepared for repeated evaluation.
type matcher struct {
	query       string
	expertOnly  bool
	degrees     map[string]struct{}
	specialties map[string]struct{}
	minYears    int
	hasMinYears bool
}

func compile(s FilterState) matcher {
	m := matcher{
		query:      strings.ToLower(strings.TrimSpace(s.QuickText)),
		expertOnly: s.ExpertOnly,
	}
	if len(s.Degrees) > 0 {
		m.degrees = make(map[string]struct{}, len(s.Degrees))
		for _, d := range s.Degrees {
			m.degrees[d] = struct{}{}
		}
	}
	if len(s.Specialties) > 0 {
		m.specialties = make(map[string]struct{}, len(s.Specialties))
		for _, sp := range s.Specialties {
			m.specialties[strings.ToLower(sp)] = struct{}{}
		}
	}
	if s.MinYears != nil {
		m.minYears = *s.MinYears
		m.hasMinYears = true
	}
	return m
}

func (m matcher) match(a advocate.Advocate) bool {
	if m.query != "" && !m.matchQuery(a) {
		return false
	}
	if m.expertOnly && a.YearsOfExperience < advocate.ExpertYears {
		return false
	}
	if m.degrees != nil {
		if _, ok := m.degrees[a.Degree]; !ok {
			return false
		}
	}
	if m.specialties != nil && !m.matchSpecialty(a) {
		return false
	}
	if m.hasMinYears && a.YearsOfExperience < m.minYears {
		return false
	}
	return true
}

func (m matcher) matchQuery(a advocate.Advocate) bool {
	for _, field := range []string{a.FirstName, a.LastName, a.City, a.Degree} {
		if strings.Contains(strings.ToLower(field), m.query) {
			return true
		}
	}
	for _, sp := range a.Specialties {
		if strings.Contains(strings.ToLower(sp), m.query) {
			return true
		}
	}
	return strings.Contains(strconv.Itoa(a.YearsOfExperience), m.query)
}

func (m matcher) matchSpecialty(a advocate.Advocate) bool {
	for _, sp := range a.Specialties {
		if _, ok := m.specialties[strings.ToLower(sp)]; ok {
			return true
		}
	}
	return false
}
