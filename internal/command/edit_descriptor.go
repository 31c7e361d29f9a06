package command

import (
	"slices"

	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
)

// EditDescriptor is a sparse patch over a person. Unset slots leave the
// field unchanged; a set repeatable slot with no values clears the field.
type EditDescriptor struct {
	name    *models.Name
	phone   *models.Phone
	email   *models.Email
	address *models.Address
	nric    *models.Nric
	age     *models.Age
	region  *models.Region
	risk    *models.RiskLevel

	tags           []models.Tag
	hasTags        bool
	medicalTags    []models.MedicalQualificationTag
	hasMedicalTags bool
	dates          []models.AvailableDate
	hasDates       bool
}

func (d *EditDescriptor) SetName(v models.Name)       { d.name = &v }
func (d *EditDescriptor) SetPhone(v models.Phone)     { d.phone = &v }
func (d *EditDescriptor) SetEmail(v models.Email)     { d.email = &v }
func (d *EditDescriptor) SetAddress(v models.Address) { d.address = &v }
func (d *EditDescriptor) SetNric(v models.Nric)       { d.nric = &v }
func (d *EditDescriptor) SetAge(v models.Age)         { d.age = &v }
func (d *EditDescriptor) SetRegion(v models.Region)   { d.region = &v }
func (d *EditDescriptor) SetRiskLevel(v models.RiskLevel) {
	d.risk = &v
}

func (d *EditDescriptor) SetTags(v []models.Tag) {
	d.tags, d.hasTags = slices.Clone(v), true
}

func (d *EditDescriptor) SetMedicalTags(v []models.MedicalQualificationTag) {
	d.medicalTags, d.hasMedicalTags = slices.Clone(v), true
}

func (d *EditDescriptor) SetAvailableDates(v []models.AvailableDate) {
	d.dates, d.hasDates = slices.Clone(v), true
}

func (d *EditDescriptor) Name() (models.Name, bool)           { return get(d.name) }
func (d *EditDescriptor) Phone() (models.Phone, bool)         { return get(d.phone) }
func (d *EditDescriptor) Email() (models.Email, bool)         { return get(d.email) }
func (d *EditDescriptor) Address() (models.Address, bool)     { return get(d.address) }
func (d *EditDescriptor) Nric() (models.Nric, bool)           { return get(d.nric) }
func (d *EditDescriptor) Age() (models.Age, bool)             { return get(d.age) }
func (d *EditDescriptor) Region() (models.Region, bool)       { return get(d.region) }
func (d *EditDescriptor) RiskLevel() (models.RiskLevel, bool) { return get(d.risk) }

func (d *EditDescriptor) Tags() ([]models.Tag, bool) {
	return slices.Clone(d.tags), d.hasTags
}

func (d *EditDescriptor) MedicalTags() ([]models.MedicalQualificationTag, bool) {
	return slices.Clone(d.medicalTags), d.hasMedicalTags
}

func (d *EditDescriptor) AvailableDates() ([]models.AvailableDate, bool) {
	return slices.Clone(d.dates), d.hasDates
}

// IsAnyFieldEdited reports whether at least one slot is set.
func (d *EditDescriptor) IsAnyFieldEdited() bool {
	return d.name != nil || d.phone != nil || d.email != nil || d.address != nil ||
		d.nric != nil || d.age != nil || d.region != nil || d.risk != nil ||
		d.hasTags || d.hasMedicalTags || d.hasDates
}

// ApplyToPerson returns a new Person with every set slot overriding the
// original. The original is not modified.
func (d *EditDescriptor) ApplyToPerson(p models.Person) (models.Person, error) {
	f := p.Fields()
	override(&f.Name, d.name)
	override(&f.Phone, d.phone)
	override(&f.Email, d.email)
	override(&f.Address, d.address)
	override(&f.Nric, d.nric)
	override(&f.Age, d.age)
	override(&f.Region, d.region)
	if d.hasTags {
		f.Tags = slices.Clone(d.tags)
	}
	if d.hasDates {
		f.AvailableDates = slices.Clone(d.dates)
	}
	return models.NewPerson(f)
}

// ApplyToElderly fails when the descriptor edits medical qualifications,
// which elderly do not have.
func (d *EditDescriptor) ApplyToElderly(e models.Elderly) (models.Elderly, error) {
	if d.hasMedicalTags {
		return models.Elderly{}, dErrors.New(dErrors.CodeValidation, "Medical qualifications can only be edited for volunteers")
	}
	p, err := d.ApplyToPerson(e.Person)
	if err != nil {
		return models.Elderly{}, err
	}
	risk := e.RiskLevel()
	override(&risk, d.risk)
	return models.NewElderly(p, risk), nil
}

// ApplyToVolunteer fails when the descriptor edits the risk level, which
// volunteers do not have.
func (d *EditDescriptor) ApplyToVolunteer(v models.Volunteer) (models.Volunteer, error) {
	if d.risk != nil {
		return models.Volunteer{}, dErrors.New(dErrors.CodeValidation, "Risk level can only be edited for elderly")
	}
	p, err := d.ApplyToPerson(v.Person)
	if err != nil {
		return models.Volunteer{}, err
	}
	medical := v.MedicalTags()
	if d.hasMedicalTags {
		medical = slices.Clone(d.medicalTags)
	}
	return models.NewVolunteer(p, medical), nil
}

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
