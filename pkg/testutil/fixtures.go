package testutil

import (
	"fmt"

	"friendlylink/internal/registry/models"
)

// TestNrics are fixed identity numbers for deterministic test data.
var TestNrics = struct {
	Elderly1   models.Nric
	Elderly2   models.Nric
	Elderly3   models.Nric
	Volunteer1 models.Nric
	Volunteer2 models.Nric
	Volunteer3 models.Nric
}{
	Elderly1:   "S1234567A",
	Elderly2:   "S2345678B",
	Elderly3:   "S3456789C",
	Volunteer1: "T7654321B",
	Volunteer2: "T6543210C",
	Volunteer3: "T5432109D",
}

// ElderlyBuilder provides a fluent interface for building test elderly.
type ElderlyBuilder struct {
	fields models.PersonFields
	risk   models.RiskLevel
}

// NewElderlyBuilder creates a builder with sensible defaults.
func NewElderlyBuilder() *ElderlyBuilder {
	return &ElderlyBuilder{
		fields: models.PersonFields{
			Name:    "Alice Tan",
			Nric:    TestNrics.Elderly1,
			Phone:   "61234567",
			Address: "Blk 123 Ang Mo Kio Ave 3",
			Region:  models.RegionNortheast,
		},
		risk: models.RiskLow,
	}
}

func (b *ElderlyBuilder) WithNric(n models.Nric) *ElderlyBuilder {
	b.fields.Nric = n
	return b
}

func (b *ElderlyBuilder) WithName(n models.Name) *ElderlyBuilder {
	b.fields.Name = n
	return b
}

func (b *ElderlyBuilder) WithRegion(r models.Region) *ElderlyBuilder {
	b.fields.Region = r
	return b
}

func (b *ElderlyBuilder) WithRisk(r models.RiskLevel) *ElderlyBuilder {
	b.risk = r
	return b
}

func (b *ElderlyBuilder) WithTags(tags ...models.Tag) *ElderlyBuilder {
	b.fields.Tags = tags
	return b
}

func (b *ElderlyBuilder) WithAvailableDates(dates ...models.AvailableDate) *ElderlyBuilder {
	b.fields.AvailableDates = dates
	return b
}

// Build panics on invalid input; builders are only fed literals.
func (b *ElderlyBuilder) Build() models.Elderly {
	p, err := models.NewPerson(b.fields)
	if err != nil {
		panic(fmt.Sprintf("testutil: build elderly: %v", err))
	}
	return models.NewElderly(p, b.risk)
}

// VolunteerBuilder provides a fluent interface for building test volunteers.
type VolunteerBuilder struct {
	fields      models.PersonFields
	medicalTags []models.MedicalQualificationTag
}

func NewVolunteerBuilder() *VolunteerBuilder {
	return &VolunteerBuilder{
		fields: models.PersonFields{
			Name:   "Ben Lim",
			Nric:   TestNrics.Volunteer1,
			Phone:  "91234567",
			Email:  "ben@example.com",
			Region: models.RegionNorth,
		},
	}
}

func (b *VolunteerBuilder) WithNric(n models.Nric) *VolunteerBuilder {
	b.fields.Nric = n
	return b
}

func (b *VolunteerBuilder) WithName(n models.Name) *VolunteerBuilder {
	b.fields.Name = n
	return b
}

func (b *VolunteerBuilder) WithRegion(r models.Region) *VolunteerBuilder {
	b.fields.Region = r
	return b
}

func (b *VolunteerBuilder) WithTags(tags ...models.Tag) *VolunteerBuilder {
	b.fields.Tags = tags
	return b
}

func (b *VolunteerBuilder) WithMedicalTags(raw ...string) *VolunteerBuilder {
	for _, r := range raw {
		m, err := models.ParseMedicalTag(r)
		if err != nil {
			panic(fmt.Sprintf("testutil: medical tag %q: %v", r, err))
		}
		b.medicalTags = append(b.medicalTags, m)
	}
	return b
}

func (b *VolunteerBuilder) Build() models.Volunteer {
	p, err := models.NewPerson(b.fields)
	if err != nil {
		panic(fmt.Sprintf("testutil: build volunteer: %v", err))
	}
	return models.NewVolunteer(p, b.medicalTags)
}

// MustDate parses an available date range or panics.
func MustDate(raw string) models.AvailableDate {
	d, err := models.ParseAvailableDate(raw)
	if err != nil {
		panic(fmt.Sprintf("testutil: date %q: %v", raw, err))
	}
	return d
}
