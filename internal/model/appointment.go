package model

type AppointmentStatus string

// Scheduled is the only status an appointment ever holds; cancellation removes
// the record instead of transitioning it.
const AppointmentStatusScheduled AppointmentStatus = "scheduled"

// Appointment lives in the "consultas" collection. Date and time are free-text
// exactly as the patient entered them.
type Appointment struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Doctor    string            `json:"doctor"`
	Specialty string            `json:"specialty,omitempty"`
	Status    AppointmentStatus `json:"status"`
}

type ScheduleRequest struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Doctor    string `json:"doctor" validate:"required"`
	Specialty string `json:"specialty"`
}
