package model

// PatientProfile is appended to the "pacientes" collection at registration.
// Contact and insurance fields start empty and are filled in later by the
// presentation layer.
type PatientProfile struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Insurance  string `json:"insurance"`
	BirthDate  string `json:"birth_date"`
}
