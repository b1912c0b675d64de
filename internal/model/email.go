package model

import "strings"

// Email is one outbound message handed to the dispatch primitive.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// NormalizeEmail lowercases and trims an address. It does not validate.
// Subscribers are deduplicated on the normalized form.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LooksLikeEmail is the deliberately weak format check used by the site:
// the address must contain an "@" and at least one ".".
func LooksLikeEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}
