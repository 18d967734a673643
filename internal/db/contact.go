package db

import "gorm.io/gorm"

// Contact submission statuses. Any status may move to any other; there is no
// enforced transition graph.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusResolved = "resolved"
)

// ContactSubmission is one lead captured from the public contact or hero
// form. Rows are only ever triaged or deleted by an admin.
type ContactSubmission struct {
	gorm.Model
	Reference   string `gorm:"uniqueIndex"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	Email       string `gorm:"not null;index"`
	Phone       string
	ServiceType string
	Message     string `gorm:"type:text;not null"`
	Status      string `gorm:"default:'new';index"`
}

// ValidContactStatus reports whether s is a known submission status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusResolved:
		return true
	}
	return false
}
