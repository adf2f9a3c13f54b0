package utils

import "strings"

// NormalizePlate trims a license plate, drops inner spaces and upper-cases it.
// The dash between the two halves is kept.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ToUpper(normalized)
}
