package audit

import "time"

// Event records one staff access to prisoner data. Append-only and
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	StaffID        string    `json:"staffId"`
	PrisonerNumber string    `json:"prisonerNumber"`
	Action         string    `json:"action"`
}

// Actions recorded against prisoner data.
const (
	ActionViewProfile = "VIEW_PROFILE"
)
