package model

import "strings"

// ContactMessage is a visitor message submitted via the contact form.
// It is never persisted; it lives only for the duration of one relay.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Trim strips surrounding whitespace from every field in place.
func (m *ContactMessage) Trim() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

// MissingField returns the JSON name of the first required field that is
// empty, or "" when name, email and message are all present.
func (m *ContactMessage) MissingField() string {
	switch {
	case m.Name == "":
		return "name"
	case m.Email == "":
		return "email"
	case m.Message == "":
		return "message"
	}
	return ""
}
