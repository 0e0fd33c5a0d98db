package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Applied at the service boundary before any storage or comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func TrimField(s string) string {
	return strings.TrimSpace(s)
}
