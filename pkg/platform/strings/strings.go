// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
	"unicode"
)

// DedupeAndTrimLower trims and lowercases each element, dropping blanks and
// duplicates. Order of first occurrence is preserved.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  Tan ", "ah", "TAN", ""})
//	// Returns: []string{"tan", "ah"}
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// Keywords splits free text on whitespace into normalised search keywords.
func Keywords(text string) []string {
	return DedupeAndTrimLower(strings.Fields(text))
}

// ContainsWordIgnoreCase reports whether sentence has a whitespace-separated
// word equal to word, ignoring case.
func ContainsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, w := range strings.Fields(sentence) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// ToSnakeCase converts a Go identifier such as "VolunteerNric" to "volunteer_nric".
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
