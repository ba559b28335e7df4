package advocate

// Response shapes an advocate for HTTP delivery. It adds the display-only fields the
// rendering layer needs on top of the stored record.
type Response struct {
	RowID             string   `json:"rowId"`
	ID                string   `json:"id,omitempty"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	City              string   `json:"city"`
	Degree            string   `json:"degree"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Expert            bool     `json:"expert"`
	PhoneNumber       string   `json:"phoneNumber"`
	FormattedPhone    string   `json:"formattedPhone"`
}

func ToResponse(a Advocate) Response {
	specialties := a.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return Response{
		RowID:             a.Key(),
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		City:              a.City,
		Degree:            a.Degree,
		Specialties:       specialties,
		YearsOfExperience: a.YearsOfExperience,
		Expert:            a.IsExpert(),
		PhoneNumber:       a.PhoneNumber,
		FormattedPhone:    FormatPhone(a.PhoneNumber),
	}
}

func ToResponseList(advocates []Advocate) []Response {
	result := make([]Response, 0, len(advocates))
	for _, a := range advocates {
		result = append(result, ToResponse(a))
	}
	return result
}
