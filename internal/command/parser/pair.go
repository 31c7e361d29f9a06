package parser

import (
	"fmt"

	"friendlylink/internal/command"
	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
)

// ParsePair parses "nl/ELDERLY_NRIC nv/VOLUNTEER_NRIC".
func ParsePair(args string) (command.Pair, error) {
	e, v, err := parsePairKey(args, command.UsagePair)
	if err != nil {
		return command.Pair{}, err
	}
	return command.Pair{Elderly: e, Volunteer: v}, nil
}

// ParseUnpair parses "nl/ELDERLY_NRIC nv/VOLUNTEER_NRIC".
func ParseUnpair(args string) (command.DeletePair, error) {
	e, v, err := parsePairKey(args, command.UsageUnpair)
	if err != nil {
		return command.DeletePair{}, err
	}
	return command.DeletePair{Elderly: e, Volunteer: v}, nil
}

// parsePairKey validates both NRICs before failing so that two bad values
// are reported together.
func parsePairKey(args, usage string) (models.Nric, models.Nric, error) {
	m, err := Tokenize(args, PrefixElderlyNric, PrefixVolunteerNric)
	if err != nil {
		return "", "", err
	}
	if !m.ArePrefixesPresent(PrefixElderlyNric, PrefixVolunteerNric) || m.Preamble() != "" {
		return "", "", invalidFormat(usage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixElderlyNric, PrefixVolunteerNric); err != nil {
		return "", "", err
	}

	rawElderly, _ := m.Value(PrefixElderlyNric)
	rawVolunteer, _ := m.Value(PrefixVolunteerNric)
	validElderly, validVolunteer := models.IsValidNric(rawElderly), models.IsValidNric(rawVolunteer)

	switch {
	case !validElderly && !validVolunteer:
		return "", "", dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf(command.MessageBothInvalidNric, models.NricConstraints))
	case !validElderly:
		return "", "", dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf(command.MessageInvalidPersonNric, models.CategoryElderly, models.NricConstraints))
	case !validVolunteer:
		return "", "", dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf(command.MessageInvalidPersonNric, models.CategoryVolunteer, models.NricConstraints))
	}

	elderly, err := ParseNric(rawElderly)
	if err != nil {
		return "", "", err
	}
	volunteer, err := ParseNric(rawVolunteer)
	if err != nil {
		return "", "", err
	}
	return elderly, volunteer, nil
}
