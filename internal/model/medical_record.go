package model

// MedicalRecordEntry is an append-only clinical note in the "prontuarios"
// collection. CreatedAt holds the calendar date in DD/MM/YYYY form.
type MedicalRecordEntry struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"created_at"`
	Observations string `json:"observations"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription,omitempty"`
}

type AddEntryRequest struct {
	Observations string `json:"observations" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Prescription string `json:"prescription"`
}
