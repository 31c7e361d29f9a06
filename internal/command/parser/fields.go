package parser

import (
	"errors"

	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/validation"
)

// Field parsers. Every failure is a CodeInvalidInput error carrying the
// value type's constraint message.

func ParseNric(raw string) (models.Nric, error)       { return models.ParseNric(raw) }
func ParseName(raw string) (models.Name, error)       { return models.ParseName(raw) }
func ParsePhone(raw string) (models.Phone, error)     { return models.ParsePhone(raw) }
func ParseEmail(raw string) (models.Email, error)     { return models.ParseEmail(raw) }
func ParseAddress(raw string) (models.Address, error) { return models.ParseAddress(raw) }
func ParseAge(raw string) (models.Age, error)         { return models.ParseAge(raw) }
func ParseRegion(raw string) (models.Region, error)   { return models.ParseRegion(raw) }
func ParseTag(raw string) (models.Tag, error)         { return models.ParseTag(raw) }

func ParseRiskLevel(raw string) (models.RiskLevel, error) {
	return models.ParseRiskLevel(raw)
}

func ParseMedicalTag(raw string) (models.MedicalQualificationTag, error) {
	return models.ParseMedicalTag(raw)
}

func ParseDateRange(raw string) (models.AvailableDate, error) {
	return models.ParseAvailableDate(raw)
}

// ParseTags parses every value; one bad value rejects the batch.
func ParseTags(values []string) ([]models.Tag, error) {
	return parseEach("tags", values, ParseTag)
}

func ParseMedicalTags(values []string) ([]models.MedicalQualificationTag, error) {
	return parseEach("medical qualifications", values, ParseMedicalTag)
}

func ParseDateRanges(values []string) ([]models.AvailableDate, error) {
	return parseEach("available dates", values, ParseDateRange)
}

// ParseRepeatableForEdit handles a repeatable prefix in an edit. No values
// means the field is untouched (ok is false). Exactly one empty value
// clears the field. Anything else is parsed as a batch.
func ParseRepeatableForEdit[T any](values []string, parse func([]string) ([]T, error)) ([]T, bool, error) {
	if len(values) == 0 {
		return nil, false, nil
	}
	if len(values) == 1 && values[0] == "" {
		return []T{}, true, nil
	}
	parsed, err := parse(values)
	if err != nil {
		return nil, false, err
	}
	return parsed, true, nil
}

// IsParseError reports whether err came from parsing rather than execution.
func IsParseError(err error) bool {
	var de *dErrors.Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == dErrors.CodeInvalidInput || de.Code == dErrors.CodeBadRequest
}

func parseEach[T any](field string, values []string, parse func(string) (T, error)) ([]T, error) {
	if err := validation.CheckSliceCount(field, len(values), validation.MaxRepeatedValues); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		parsed, err := parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}
