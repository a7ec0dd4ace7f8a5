package models

import "time"

// ComplaintStatus is the lifecycle of a PQRS case, distinct from the
// conversation lifecycle.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// Complaint is the PQRS case a conversation may be attached to.
type Complaint struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      ComplaintStatus `json:"status"`
	CreatedBy   *User           `json:"created_by"`
	AssignedTo  *User           `json:"assigned_to"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
