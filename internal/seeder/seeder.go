package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"friendlylink/internal/registry/models"
)

// Registry defines the mutations the seeder needs.
type Registry interface {
	AddElderly(ctx context.Context, e models.Elderly) error
	AddVolunteer(ctx context.Context, v models.Volunteer) error
	AddPair(ctx context.Context, elderly, volunteer models.Nric) (models.Pair, error)
}

// Seeder populates an empty registry with sample data
type Seeder struct {
	logger *slog.Logger
}

// New creates a new seeder
func New(logger *slog.Logger) *Seeder {
	return &Seeder{logger: logger}
}

type samplePerson struct {
	name    string
	nric    string
	phone   string
	email   string
	address string
	age     string
	region  string
	tags    []string
	dates   []string
}

// SeedAll adds the sample elderly, volunteers and pairs
func (s *Seeder) SeedAll(ctx context.Context, registry Registry) error {
	s.logger.Info("seeding sample data...")

	elderly, err := s.seedElderly(ctx, registry)
	if err != nil {
		return fmt.Errorf("failed to seed elderly: %w", err)
	}

	volunteers, err := s.seedVolunteers(ctx, registry)
	if err != nil {
		return fmt.Errorf("failed to seed volunteers: %w", err)
	}

	pairs, err := s.seedPairs(ctx, registry)
	if err != nil {
		return fmt.Errorf("failed to seed pairs: %w", err)
	}

	s.logger.Info("sample data seeded successfully",
		"elderly", elderly,
		"volunteers", volunteers,
		"pairs", pairs,
	)

	return nil
}

func (s *Seeder) seedElderly(ctx context.Context, registry Registry) (int, error) {
	sample := []struct {
		person samplePerson
		risk   string
	}{
		{samplePerson{"Tan Ah Kow", "S1234567A", "61234567", "", "Blk 123 Ang Mo Kio Ave 3", "82", "NORTHEAST", []string{"diabetic"}, []string{"2024-03-01, 2024-03-31"}}, "HIGH"},
		{samplePerson{"Lim Bee Hoon", "S2345678B", "62345678", "", "Blk 45 Tampines St 21", "76", "EAST", nil, nil}, "MEDIUM"},
		{samplePerson{"Muthu Rajan", "S3456789C", "", "", "12 Jurong West St 41", "90", "WEST", []string{"wheelchair", "hearing"}, nil}, "HIGH"},
		{samplePerson{"Siti Aminah", "S4567890D", "64567890", "", "Blk 7 Bishan St 13", "68", "CENTRAL", nil, nil}, "LOW"},
	}

	for _, e := range sample {
		p, err := e.person.build()
		if err != nil {
			return 0, err
		}
		risk, err := models.ParseRiskLevel(e.risk)
		if err != nil {
			return 0, err
		}
		if err := registry.AddElderly(ctx, models.NewElderly(p, risk)); err != nil {
			return 0, err
		}
	}

	return len(sample), nil
}

func (s *Seeder) seedVolunteers(ctx context.Context, registry Registry) (int, error) {
	sample := []struct {
		person  samplePerson
		medical []string
	}{
		{samplePerson{"Ben Lim", "T7654321B", "91234567", "ben@example.com", "", "24", "NORTH", nil, []string{"2024-03-01, 2024-06-30"}}, []string{"CPR, BASIC"}},
		{samplePerson{"Chloe Ng", "T6543210C", "92345678", "chloe@example.com", "", "31", "EAST", []string{"mandarin"}, nil}, []string{"First Aid, ADVANCED", "CPR, INTERMEDIATE"}},
		{samplePerson{"Daniel Koh", "T5432109D", "93456789", "", "", "45", "WEST", nil, nil}, nil},
	}

	for _, v := range sample {
		p, err := v.person.build()
		if err != nil {
			return 0, err
		}
		medical := make([]models.MedicalQualificationTag, 0, len(v.medical))
		for _, raw := range v.medical {
			tag, err := models.ParseMedicalTag(raw)
			if err != nil {
				return 0, err
			}
			medical = append(medical, tag)
		}
		if err := registry.AddVolunteer(ctx, models.NewVolunteer(p, medical)); err != nil {
			return 0, err
		}
	}

	return len(sample), nil
}

func (s *Seeder) seedPairs(ctx context.Context, registry Registry) (int, error) {
	pairs := []models.PairKey{
		{Elderly: "S1234567A", Volunteer: "T7654321B"},
		{Elderly: "S2345678B", Volunteer: "T6543210C"},
		{Elderly: "S3456789C", Volunteer: "T6543210C"},
	}

	for _, p := range pairs {
		if _, err := registry.AddPair(ctx, p.Elderly, p.Volunteer); err != nil {
			return 0, err
		}
	}

	return len(pairs), nil
}

// build runs every field through its parser so sample data obeys the same
// constraints as user input.
func (p samplePerson) build() (models.Person, error) {
	var (
		f   models.PersonFields
		err error
	)
	if f.Name, err = models.ParseName(p.name); err != nil {
		return models.Person{}, err
	}
	if f.Nric, err = models.ParseNric(p.nric); err != nil {
		return models.Person{}, err
	}
	if p.phone != "" {
		if f.Phone, err = models.ParsePhone(p.phone); err != nil {
			return models.Person{}, err
		}
	}
	if p.email != "" {
		if f.Email, err = models.ParseEmail(p.email); err != nil {
			return models.Person{}, err
		}
	}
	if p.address != "" {
		if f.Address, err = models.ParseAddress(p.address); err != nil {
			return models.Person{}, err
		}
	}
	if f.Age, err = models.ParseAge(p.age); err != nil {
		return models.Person{}, err
	}
	if f.Region, err = models.ParseRegion(p.region); err != nil {
		return models.Person{}, err
	}
	for _, raw := range p.tags {
		tag, err := models.ParseTag(raw)
		if err != nil {
			return models.Person{}, err
		}
		f.Tags = append(f.Tags, tag)
	}
	for _, raw := range p.dates {
		d, err := models.ParseAvailableDate(raw)
		if err != nil {
			return models.Person{}, err
		}
		f.AvailableDates = append(f.AvailableDates, d)
	}
	return models.NewPerson(f)
}
