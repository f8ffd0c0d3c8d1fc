package models

import "strings"

// NormalizeName produces the case-insensitive lookup key for a display name
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
