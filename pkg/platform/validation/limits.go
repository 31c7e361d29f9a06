package validation

import (
	"fmt"
	"unicode/utf8"

	dErrors "friendlylink/pkg/domain-errors"
)

// Command input limits
const (
	// MaxCommandLength bounds a single command line.
	MaxCommandLength = 4096

	// MaxRepeatedValues bounds tags, medical tags and date ranges per person.
	MaxRepeatedValues = 50

	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed max characters.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s exceeds max length of %d characters", fieldName, max))
	}
	return nil
}
