package parser

import (
	"fmt"

	"friendlylink/internal/command"
	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
)

func invalidFormat(usage string) error {
	return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf(command.MessageInvalidCommandFormat, usage))
}

var elderlyPrefixes = append([]Prefix{PrefixRiskLevel}, personPrefixes...)

var volunteerPrefixes = append([]Prefix{PrefixMedicalTag}, personPrefixes...)

var editPrefixes = append([]Prefix{PrefixRiskLevel, PrefixMedicalTag}, personPrefixes...)

// ParseAddElderly parses "n/NAME ic/NRIC [optional fields]".
func ParseAddElderly(args string) (command.AddElderly, error) {
	m, err := tokenizeAdd(args, command.UsageAddElderly, elderlyPrefixes)
	if err != nil {
		return command.AddElderly{}, err
	}
	p, err := parsePerson(m)
	if err != nil {
		return command.AddElderly{}, err
	}
	var risk models.RiskLevel
	if raw, ok := m.Value(PrefixRiskLevel); ok {
		if risk, err = ParseRiskLevel(raw); err != nil {
			return command.AddElderly{}, err
		}
	}
	return command.AddElderly{Elderly: models.NewElderly(p, risk)}, nil
}

// ParseAddVolunteer parses "n/NAME ic/NRIC [optional fields] [mt/...]".
func ParseAddVolunteer(args string) (command.AddVolunteer, error) {
	m, err := tokenizeAdd(args, command.UsageAddVolunteer, volunteerPrefixes)
	if err != nil {
		return command.AddVolunteer{}, err
	}
	p, err := parsePerson(m)
	if err != nil {
		return command.AddVolunteer{}, err
	}
	medical, err := ParseMedicalTags(m.AllValues(PrefixMedicalTag))
	if err != nil {
		return command.AddVolunteer{}, err
	}
	return command.AddVolunteer{Volunteer: models.NewVolunteer(p, medical)}, nil
}

func tokenizeAdd(args, usage string, prefixes []Prefix) (*ArgumentMultimap, error) {
	m, err := Tokenize(args, prefixes...)
	if err != nil {
		return nil, err
	}
	if !m.ArePrefixesPresent(PrefixName, PrefixNric) || m.Preamble() != "" {
		return nil, invalidFormat(usage)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValued...); err != nil {
		return nil, err
	}
	return m, nil
}

// parsePerson reads the shared fields. Name and NRIC must be present.
func parsePerson(m *ArgumentMultimap) (models.Person, error) {
	var (
		f   models.PersonFields
		err error
	)
	raw, _ := m.Value(PrefixName)
	if f.Name, err = ParseName(raw); err != nil {
		return models.Person{}, err
	}
	raw, _ = m.Value(PrefixNric)
	if f.Nric, err = ParseNric(raw); err != nil {
		return models.Person{}, err
	}
	if err := parseOptional(m, PrefixPhone, &f.Phone, ParsePhone); err != nil {
		return models.Person{}, err
	}
	if err := parseOptional(m, PrefixEmail, &f.Email, ParseEmail); err != nil {
		return models.Person{}, err
	}
	if err := parseOptional(m, PrefixAddress, &f.Address, ParseAddress); err != nil {
		return models.Person{}, err
	}
	if err := parseOptional(m, PrefixAge, &f.Age, ParseAge); err != nil {
		return models.Person{}, err
	}
	if err := parseOptional(m, PrefixRegion, &f.Region, ParseRegion); err != nil {
		return models.Person{}, err
	}
	if f.Tags, err = ParseTags(m.AllValues(PrefixTag)); err != nil {
		return models.Person{}, err
	}
	if f.AvailableDates, err = ParseDateRanges(m.AllValues(PrefixAvailableDate)); err != nil {
		return models.Person{}, err
	}
	return models.NewPerson(f)
}

func parseOptional[T any](m *ArgumentMultimap, p Prefix, dst *T, parse func(string) (T, error)) error {
	raw, ok := m.Value(p)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ParseEdit parses "NRIC [fields]...". The preamble must be a valid NRIC
// and at least one field must be given.
func ParseEdit(args string) (command.Edit, error) {
	m, err := Tokenize(args, editPrefixes...)
	if err != nil {
		return command.Edit{}, err
	}
	if m.Preamble() == "" {
		return command.Edit{}, invalidFormat(command.UsageEdit)
	}
	target, err := ParseNric(m.Preamble())
	if err != nil {
		return command.Edit{}, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf(command.MessageInvalidToEditNric, models.NricConstraints))
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValued...); err != nil {
		return command.Edit{}, err
	}

	d := &command.EditDescriptor{}
	if err := setIfPresent(m, PrefixName, ParseName, d.SetName); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixPhone, ParsePhone, d.SetPhone); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixEmail, ParseEmail, d.SetEmail); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixAddress, ParseAddress, d.SetAddress); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixNric, ParseNric, d.SetNric); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixAge, ParseAge, d.SetAge); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixRegion, ParseRegion, d.SetRegion); err != nil {
		return command.Edit{}, err
	}
	if err := setIfPresent(m, PrefixRiskLevel, ParseRiskLevel, d.SetRiskLevel); err != nil {
		return command.Edit{}, err
	}
	if err := setRepeatable(m, PrefixTag, ParseTags, d.SetTags); err != nil {
		return command.Edit{}, err
	}
	if err := setRepeatable(m, PrefixMedicalTag, ParseMedicalTags, d.SetMedicalTags); err != nil {
		return command.Edit{}, err
	}
	if err := setRepeatable(m, PrefixAvailableDate, ParseDateRanges, d.SetAvailableDates); err != nil {
		return command.Edit{}, err
	}

	if !d.IsAnyFieldEdited() {
		return command.Edit{}, dErrors.New(dErrors.CodeBadRequest, command.MessageNotEdited)
	}
	return command.Edit{Nric: target, Descriptor: d}, nil
}

func setIfPresent[T any](m *ArgumentMultimap, p Prefix, parse func(string) (T, error), set func(T)) error {
	raw, ok := m.Value(p)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return err
	}
	set(v)
	return nil
}

func setRepeatable[T any](m *ArgumentMultimap, p Prefix, parse func([]string) ([]T, error), set func([]T)) error {
	values, ok, err := ParseRepeatableForEdit(m.AllValues(p), parse)
	if err != nil {
		return err
	}
	if ok {
		set(values)
	}
	return nil
}

// ParseDeleteElderly parses "NRIC".
func ParseDeleteElderly(args string) (command.DeleteElderly, error) {
	nric, err := parseNricPreamble(args, command.UsageDeleteElderly)
	return command.DeleteElderly{Nric: nric}, err
}

// ParseDeleteVolunteer parses "NRIC".
func ParseDeleteVolunteer(args string) (command.DeleteVolunteer, error) {
	nric, err := parseNricPreamble(args, command.UsageDeleteVolunteer)
	return command.DeleteVolunteer{Nric: nric}, err
}

func parseNricPreamble(args, usage string) (models.Nric, error) {
	m, err := Tokenize(args)
	if err != nil {
		return "", err
	}
	if m.Preamble() == "" {
		return "", invalidFormat(usage)
	}
	return ParseNric(m.Preamble())
}
