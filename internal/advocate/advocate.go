package advocate

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ExpertYears is the experience threshold at which an advocate is shown as an expert.
const ExpertYears = 10

// Advocate is one profile in the directory. JSON tags follow the camelCase contract
// of the `/api/advocates` endpoint.
type Advocate struct {
	ID                string   `json:"id,omitempty"`
	FirstName         string   `json:"firstName" validate:"required"`
	LastName          string   `json:"lastName" validate:"required"`
	City              string   `json:"city" validate:"required"`
	Degree            string   `json:"degree" validate:"required"`
	Specialties       []string `json:"specialties" validate:"dive,required"`
	YearsOfExperience int      `json:"yearsOfExperience" validate:"gte=0"`
	PhoneNumber       string   `json:"phoneNumber" validate:"required"`
}

// Key returns a stable identity for list rendering. Records without an id fall back
// to their phone number, then to their name.
func (a Advocate) Key() string {
	if a.ID != "" {
		return a.ID
	}
	if a.PhoneNumber != "" {
		return a.PhoneNumber
	}
	return a.FirstName + "-" + a.LastName
}

// IsExpert reports whether the advocate has at least ExpertYears of experience.
func (a Advocate) IsExpert() bool {
	return a.YearsOfExperience >= ExpertYears
}

// Normalize coerces a record into the shape the directory expects: specialties is never
// nil and holds no blank entries, years is never negative.
func Normalize(a Advocate) Advocate {
	specialties := make([]string, 0, len(a.Specialties))
	for _, s := range a.Specialties {
		if strings.TrimSpace(s) == "" {
			continue
		}
		specialties = append(specialties, s)
	}
	a.Specialties = specialties
	if a.YearsOfExperience < 0 {
		a.YearsOfExperience = 0
	}
	return a
}

// NormalizeAll applies Normalize to every record and returns a new slice.
func NormalizeAll(in []Advocate) []Advocate {
	out := make([]Advocate, 0, len(in))
	for _, a := range in {
		out = append(out, Normalize(a))
	}
	return out
}

// wireAdvocate mirrors Advocate with loosely typed fields so that records coming from
// the database API or a seed payload never fail to decode on a single bad field.
type wireAdvocate struct {
	ID                json.RawMessage `json:"id"`
	FirstName         json.RawMessage `json:"firstName"`
	LastName          json.RawMessage `json:"lastName"`
	City              json.RawMessage `json:"city"`
	Degree            json.RawMessage `json:"degree"`
	Specialties       json.RawMessage `json:"specialties"`
	YearsOfExperience json.RawMessage `json:"yearsOfExperience"`
	PhoneNumber       json.RawMessage `json:"phoneNumber"`
}

// UnmarshalJSON decodes an advocate tolerantly: missing or mistyped string fields become
// "", a non-array specialties value becomes empty and years may be a number or a numeric string.
func (a *Advocate) UnmarshalJSON(data []byte) error {
	var w wireAdvocate
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = Normalize(Advocate{
		ID:                looseString(w.ID),
		FirstName:         looseString(w.FirstName),
		LastName:          looseString(w.LastName),
		City:              looseString(w.City),
		Degree:            looseString(w.Degree),
		Specialties:       looseStrings(w.Specialties),
		YearsOfExperience: looseInt(w.YearsOfExperience),
		PhoneNumber:       looseString(w.PhoneNumber),
	})
	return nil
}

func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// ids and phone numbers are often stored as numbers
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func looseStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := looseString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func looseInt(raw json.RawMessage) int {
	s := looseString(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
