package advocate

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestUnmarshalJSON_Tolerant(t *testing.T) {
	raw := `[
		{"id": 7, "firstName": "Jane", "lastName": "Doe", "city": "Austin", "degree": "MD",
		 "specialties": ["Anxiety", "", 3], "yearsOfExperience": "12", "phoneNumber": 5125550000},
		{"firstName": null, "specialties": "Anxiety", "yearsOfExperience": 7.9},
		{"yearsOfExperience": -4},
		{}
	]`
	var got []Advocate
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("expected tolerant decode, got %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 records, got %d", len(got))
	}

	jane := got[0]
	if jane.ID != "7" || jane.PhoneNumber != "5125550000" {
		t.Fatalf("numeric id/phone should decode as strings, got %q %q", jane.ID, jane.PhoneNumber)
	}
	if jane.YearsOfExperience != 12 {
		t.Fatalf("expected years 12, got %d", jane.YearsOfExperience)
	}
	if !slices.Equal(jane.Specialties, []string{"Anxiety", "3"}) {
		t.Fatalf("unexpected specialties %v", jane.Specialties)
	}

	if got[1].FirstName != "" || got[1].Specialties == nil || len(got[1].Specialties) != 0 {
		t.Fatalf("non-array specialties should become empty, got %#v", got[1])
	}
	if got[1].YearsOfExperience != 7 {
		t.Fatalf("expected fractional years to truncate to 7, got %d", got[1].YearsOfExperience)
	}
	if got[2].YearsOfExperience != 0 {
		t.Fatalf("negative years should clamp to 0, got %d", got[2].YearsOfExperience)
	}
	if got[3].Specialties == nil {
		t.Fatalf("specialties should never be nil")
	}
}

func TestUnmarshalJSON_RejectsNonObject(t *testing.T) {
	var a Advocate
	if err := json.Unmarshal([]byte(`"jane"`), &a); err == nil {
		t.Fatalf("expected an error for a non-object record")
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   Advocate
		want string
	}{
		{"id wins", Advocate{ID: "9", PhoneNumber: "555", FirstName: "A", LastName: "B"}, "9"},
		{"phone fallback", Advocate{PhoneNumber: "555", FirstName: "A", LastName: "B"}, "555"},
		{"name fallback", Advocate{FirstName: "A", LastName: "B"}, "A-B"},
	}
	for _, tt := range tests {
		if got := tt.in.Key(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestIsExpert(t *testing.T) {
	if (Advocate{YearsOfExperience: 9}).IsExpert() {
		t.Fatalf("9 years should not be expert")
	}
	if !(Advocate{YearsOfExperience: 10}).IsExpert() {
		t.Fatalf("10 years should be expert")
	}
}

func TestFormatPhone(t *testing.T) {
	tests := map[string]string{
		"5551234567":      "+1 (555) 123-4567",
		"(555) 123-4567":  "+1 (555) 123-4567",
		"15551234567":     "+1 (555) 123-4567",
		"+1 555 123 4567": "+1 (555) 123-4567",
		"25551234567":     "25551234567",
		"12345":           "12345",
		"":                "",
	}
	for in, want := range tests {
		if got := FormatPhone(in); got != want {
			t.Errorf("FormatPhone(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSeedData_FreshCopy(t *testing.T) {
	a := SeedData()
	a[0].FirstName = "Changed"
	a[0].Specialties[0] = "Changed"
	b := SeedData()
	if b[0].FirstName != "John" || b[0].Specialties[0] != "Bipolar" {
		t.Fatalf("seed data should not be shared between calls")
	}
	if len(b) != 15 {
		t.Fatalf("expected 15 seed advocates, got %d", len(b))
	}
}
