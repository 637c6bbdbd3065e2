// Package inquiry provides the contact-inquiry domain model and data access.
package inquiry

import "time"

// Status is the workflow label on an inquiry.
type Status string

const (
	StatusNew      Status = "New"
	StatusReplied  Status = "Replied"
	StatusArchived Status = "Archived"
)

// ValidStatus returns true if s is a known inquiry status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNew, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Inquiry represents a contact-form submission. PropertyTitle is a snapshot
// taken when the inquiry was created; it is not a reference into the
// properties table.
type Inquiry struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PropertyTitle string    `json:"property_title"`
	Message       string    `json:"message"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
