package services

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[\w.-]+@[\w.-]+\.\w+`)
	// only the label is case-insensitive; the name itself stays on one line
	namePattern = regexp.MustCompile(`(?i:name)[:\-]?[ \t]*([A-Z][a-z]+(?:[ \t][A-Z][a-z]+){0,2})`)
)

const UnknownName = "Unknown"

// FindEmail returns the first email-shaped substring of text, lower-cased.
// The bool is false when text has no email at all.
func FindEmail(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := emailPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(m)), true
}

// FindName looks for a "Name: First Last" style line.
func FindName(text string) string {
	if text == "" {
		return UnknownName
	}
	m := namePattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return UnknownName
	}
	return m[1]
}

// EmailAllowed reports whether email ends with the allow-listed suffix.
func EmailAllowed(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain))
}
