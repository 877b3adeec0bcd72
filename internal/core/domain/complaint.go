package domain

import "time"

// Complaint is a submitted grievance. Records are immutable once created;
// assignment to an engineer is a separate entity, not a status field.
type Complaint struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Assignment links a complaint to an engineer by name. EngineerName is
// free text, not a validated foreign key, and the same complaint may carry
// multiple assignment records.
type Assignment struct {
	ID           string    `json:"id"`
	ComplaintID  string    `json:"complaint_id"`
	EngineerName string    `json:"engineer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
