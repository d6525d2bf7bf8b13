package service

import "strings"

// normalizeID compares identifiers coming from different representations
// (token claims vs store documents) on equal footing.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
