package advocate

// SeedData returns the bundled sample directory. It is served when the database is not
// reachable and inserted by the seed endpoint. Callers get a fresh copy each time.
func SeedData() []Advocate {
	seed := []Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: []string{"Bipolar", "LGBTQ", "Medication/Prescribing"}, YearsOfExperience: 10, PhoneNumber: "5551234567"},
		{FirstName: "Jane", LastName: "Smith", City: "Los Angeles", Degree: "PhD", Specialties: []string{"Trauma & PTSD", "Personality disorders"}, YearsOfExperience: 8, PhoneNumber: "5559876543"},
		{FirstName: "Alice", LastName: "Johnson", City: "Chicago", Degree: "MSW", Specialties: []string{"Women's issues", "Relationship issues (family, friends, couple, etc)"}, YearsOfExperience: 5, PhoneNumber: "5554567890"},
		{FirstName: "Michael", LastName: "Brown", City: "Houston", Degree: "MD", Specialties: []string{"Trauma & PTSD", "Suicide History/Attempts"}, YearsOfExperience: 12, PhoneNumber: "5556543210"},
		{FirstName: "Emily", LastName: "Davis", City: "Phoenix", Degree: "PhD", Specialties: []string{"Eating disorders", "Anxiety"}, YearsOfExperience: 7, PhoneNumber: "5553210987"},
		{FirstName: "Chris", LastName: "Martinez", City: "Philadelphia", Degree: "MSW", Specialties: []string{"LGBTQ", "Substance use/abuse"}, YearsOfExperience: 9, PhoneNumber: "5557890123"},
		{FirstName: "Jessica", LastName: "Taylor", City: "San Antonio", Degree: "MD", Specialties: []string{"Anxiety", "Chronic pain"}, YearsOfExperience: 11, PhoneNumber: "5554561234"},
		{FirstName: "David", LastName: "Harris", City: "San Diego", Degree: "PhD", Specialties: []string{"Coaching (leadership, career, academic and wellness)"}, YearsOfExperience: 6, PhoneNumber: "5557896543"},
		{FirstName: "Laura", LastName: "Clark", City: "Dallas", Degree: "MSW", Specialties: []string{"Sleep issues", "Anxiety"}, YearsOfExperience: 4, PhoneNumber: "5550123456"},
		{FirstName: "Daniel", LastName: "Lewis", City: "San Jose", Degree: "MD", Specialties: []string{"Schizophrenia and psychotic disorders", "Bipolar"}, YearsOfExperience: 13, PhoneNumber: "5553217654"},
		{FirstName: "Sarah", LastName: "Lee", City: "Austin", Degree: "PhD", Specialties: []string{"Grief and loss", "Trauma & PTSD"}, YearsOfExperience: 10, PhoneNumber: "5551238765"},
		{FirstName: "James", LastName: "King", City: "Jacksonville", Degree: "MSW", Specialties: []string{"Parenting", "Life coaching"}, YearsOfExperience: 5, PhoneNumber: "5556540987"},
		{FirstName: "Megan", LastName: "Green", City: "San Francisco", Degree: "MD", Specialties: []string{"Attention and Hyperactivity (ADHD)", "Medication/Prescribing"}, YearsOfExperience: 14, PhoneNumber: "5559873456"},
		{FirstName: "Joshua", LastName: "Walker", City: "Columbus", Degree: "PhD", Specialties: []string{"Obsessive-compulsive disorder (OCD)"}, YearsOfExperience: 9, PhoneNumber: "5556781234"},
		{FirstName: "Amanda", LastName: "Hall", City: "Fort Worth", Degree: "MSW", Specialties: []string{"Domestic abuse", "Women's issues"}, YearsOfExperience: 3, PhoneNumber: "5559872345"},
	}
	return seed
}
