// Package models holds the registry's value types and records.
//
// Every value type is validated at construction through its Parse function;
// the zero value of an optional field means "not recorded".
package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/validation"
)

const (
	NricConstraints = "NRIC must start with S, T, F, G or M, followed by 7 digits and end with a letter, e.g. S1234567A"
	NameConstraints = "Names should only contain alphanumeric characters, spaces and ' . - /, " +
		"and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the usual address rules"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	AgeConstraints     = "Age should be a whole number between 0 and 200"
	RegionConstraints  = "Region should be one of CENTRAL, NORTH, NORTHEAST, EAST or WEST"
	RiskConstraints    = "Risk level should be one of LOW, MEDIUM or HIGH"
	TagConstraints     = "Tags names should be alphanumeric"
)

const (
	MaxNameLength    = 100
	MaxAddressLength = 200
	maxAge           = 200
)

var (
	NameLengthConstraints    = fmt.Sprintf("Names should be at most %d characters long", MaxNameLength)
	AddressLengthConstraints = fmt.Sprintf("Addresses should be at most %d characters long", MaxAddressLength)
)

var (
	nricPattern  = regexp.MustCompile(`^[STFGMstfgm][0-9]{7}[A-Za-z]$`)
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '.\-/]*$`)
	phonePattern = regexp.MustCompile(`^[0-9]{3,}$`)
	agePattern   = regexp.MustCompile(`^[0-9]+$`)
	tagPattern   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Nric is the identity number that keys elderly and volunteer records.
type Nric string

func IsValidNric(raw string) bool { return nricPattern.MatchString(strings.TrimSpace(raw)) }

func ParseNric(raw string) (Nric, error) {
	trimmed := strings.TrimSpace(raw)
	if !nricPattern.MatchString(trimmed) {
		return "", invalid(NricConstraints)
	}
	return Nric(strings.ToUpper(trimmed)), nil
}

func (n Nric) String() string { return string(n) }
func (n Nric) IsZero() bool   { return n == "" }

type Name string

// ParseName collapses inner whitespace. Length is counted in characters.
func ParseName(raw string) (Name, error) {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" || !namePattern.MatchString(collapsed) {
		return "", invalid(NameConstraints)
	}
	if validation.CheckStringLength("name", collapsed, MaxNameLength) != nil {
		return "", invalid(NameLengthConstraints)
	}
	return Name(collapsed), nil
}

func (n Name) String() string { return string(n) }
func (n Name) IsZero() bool   { return n == "" }

type Phone string

func ParsePhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if !phonePattern.MatchString(trimmed) {
		return "", invalid(PhoneConstraints)
	}
	return Phone(trimmed), nil
}

func (p Phone) String() string { return string(p) }
func (p Phone) IsZero() bool   { return p == "" }

type Email string

func IsValidEmail(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return len(trimmed) <= validation.MaxEmailLength && validation.Var(trimmed, "required,email")
}

func ParseEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return "", invalid(EmailConstraints)
	}
	return Email(strings.TrimSpace(raw)), nil
}

func (e Email) String() string { return string(e) }
func (e Email) IsZero() bool   { return e == "" }

type Address string

func ParseAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalid(AddressConstraints)
	}
	if validation.CheckStringLength("address", trimmed, MaxAddressLength) != nil {
		return "", invalid(AddressLengthConstraints)
	}
	return Address(trimmed), nil
}

func (a Address) String() string { return string(a) }
func (a Address) IsZero() bool   { return a == "" }

// Age is optional on a person, so presence is tracked apart from the value:
// an age of 0 is a valid recorded age.
type Age struct {
	years   int
	present bool
}

// ParseAge accepts plain decimal digits only; signs are rejected.
func ParseAge(raw string) (Age, error) {
	trimmed := strings.TrimSpace(raw)
	if !agePattern.MatchString(trimmed) {
		return Age{}, invalid(AgeConstraints)
	}
	years, err := strconv.Atoi(trimmed)
	if err != nil || years > maxAge {
		return Age{}, invalid(AgeConstraints)
	}
	return Age{years: years, present: true}, nil
}

func (a Age) Years() int   { return a.years }
func (a Age) IsZero() bool { return !a.present }
func (a Age) String() string {
	if !a.present {
		return ""
	}
	return strconv.Itoa(a.years)
}

// Region is the planning area a person lives in.
type Region string

const (
	RegionCentral   Region = "CENTRAL"
	RegionNorth     Region = "NORTH"
	RegionNortheast Region = "NORTHEAST"
	RegionEast      Region = "EAST"
	RegionWest      Region = "WEST"
)

var regions = []Region{RegionCentral, RegionNorth, RegionNortheast, RegionEast, RegionWest}

func ParseRegion(raw string) (Region, error) {
	upper := Region(strings.ToUpper(strings.TrimSpace(raw)))
	for _, r := range regions {
		if r == upper {
			return r, nil
		}
	}
	return "", invalid(RegionConstraints)
}

func (r Region) String() string { return string(r) }
func (r Region) IsZero() bool   { return r == "" }

// RiskLevel applies to elderly only.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

func ParseRiskLevel(raw string) (RiskLevel, error) {
	switch r := RiskLevel(strings.ToUpper(strings.TrimSpace(raw))); r {
	case RiskLow, RiskMedium, RiskHigh:
		return r, nil
	default:
		return "", invalid(RiskConstraints)
	}
}

func (r RiskLevel) String() string { return string(r) }
func (r RiskLevel) IsZero() bool   { return r == "" }

// Tag is a free-form single-word label.
type Tag string

func ParseTag(raw string) (Tag, error) {
	trimmed := strings.TrimSpace(raw)
	if !tagPattern.MatchString(trimmed) {
		return "", invalid(TagConstraints)
	}
	return Tag(trimmed), nil
}

func (t Tag) String() string { return string(t) }

func invalid(msg string) error {
	return dErrors.New(dErrors.CodeInvalidInput, msg)
}
