package model

// ExamResultPending is recorded when an exam is registered without a result.
const ExamResultPending = "Pending"

// ExamEntry is an append-only record in the "exames" collection. There is no
// update flow; a result arriving later means a new entry.
type ExamEntry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Type      string `json:"type"`
	Result    string `json:"result"`
}

type RegisterExamRequest struct {
	Type   string `json:"type" validate:"required"`
	Result string `json:"result"`
}
