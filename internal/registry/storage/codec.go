package storage

import (
	"encoding/json"
	"fmt"

	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/store"
	"friendlylink/pkg/platform/sentinel"
	"friendlylink/pkg/platform/validation"
)

// Bucket names. Every backend stores the registry as these three JSON documents.
const (
	BucketElderly    = "elderly"
	BucketVolunteers = "volunteers"
	BucketPairs      = "pairs"
)

// Buckets lists the bucket names in hydration order.
var Buckets = []string{BucketElderly, BucketVolunteers, BucketPairs}

type jsonPerson struct {
	Name           string   `json:"name" validate:"notblank"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Address        string   `json:"address,omitempty"`
	Nric           string   `json:"nric" validate:"required"`
	Age            string   `json:"age,omitempty"`
	Region         string   `json:"region,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	AvailableDates []string `json:"availableDates,omitempty"`
}

type jsonElderly struct {
	jsonPerson
	RiskLevel string `json:"riskLevel,omitempty"`
}

type jsonVolunteer struct {
	jsonPerson
	MedicalTags []string `json:"medicalTags,omitempty"`
}

type jsonPair struct {
	ElderlyNric   string `json:"elderlyNric" validate:"required"`
	VolunteerNric string `json:"volunteerNric" validate:"required"`
}

// Encode renders the registry as bucket payloads.
func Encode(registry *store.FriendlyLink) (map[string][]byte, error) {
	elderly := registry.ElderlyList()
	je := make([]jsonElderly, len(elderly))
	for i, e := range elderly {
		je[i] = jsonElderly{jsonPerson: fromPerson(e.Person), RiskLevel: e.RiskLevel().String()}
	}

	volunteers := registry.VolunteerList()
	jv := make([]jsonVolunteer, len(volunteers))
	for i, v := range volunteers {
		jv[i] = jsonVolunteer{jsonPerson: fromPerson(v.Person), MedicalTags: stringsOf(v.MedicalTags())}
	}

	keys := registry.PairKeys()
	jp := make([]jsonPair, len(keys))
	for i, k := range keys {
		jp[i] = jsonPair{ElderlyNric: k.Elderly.String(), VolunteerNric: k.Volunteer.String()}
	}

	out := make(map[string][]byte, len(Buckets))
	for bucket, v := range map[string]any{BucketElderly: je, BucketVolunteers: jv, BucketPairs: jp} {
		payload, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", bucket, err)
		}
		out[bucket] = payload
	}
	return out, nil
}

// Decode rebuilds a registry from bucket payloads. A missing bucket is an
// empty collection; no buckets at all is sentinel.ErrNoData. Any invalid
// record fails the whole decode with sentinel.ErrDataConversion.
func Decode(buckets map[string][]byte) (*store.FriendlyLink, error) {
	if len(buckets) == 0 {
		return nil, sentinel.ErrNoData
	}

	var (
		je []jsonElderly
		jv []jsonVolunteer
		jp []jsonPair
	)
	if err := unmarshalBucket(buckets, BucketElderly, &je); err != nil {
		return nil, err
	}
	if err := unmarshalBucket(buckets, BucketVolunteers, &jv); err != nil {
		return nil, err
	}
	if err := unmarshalBucket(buckets, BucketPairs, &jp); err != nil {
		return nil, err
	}

	elderly := make([]models.Elderly, len(je))
	for i, raw := range je {
		e, err := raw.toModel()
		if err != nil {
			return nil, conversionErr(BucketElderly, i, err)
		}
		elderly[i] = e
	}
	volunteers := make([]models.Volunteer, len(jv))
	for i, raw := range jv {
		v, err := raw.toModel()
		if err != nil {
			return nil, conversionErr(BucketVolunteers, i, err)
		}
		volunteers[i] = v
	}
	pairs := make([]models.PairKey, len(jp))
	for i, raw := range jp {
		k, err := raw.toModel()
		if err != nil {
			return nil, conversionErr(BucketPairs, i, err)
		}
		pairs[i] = k
	}

	registry, err := store.NewFromLists(elderly, volunteers, pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sentinel.ErrDataConversion, err.Error())
	}
	return registry, nil
}

func unmarshalBucket(buckets map[string][]byte, name string, dst any) error {
	payload, ok := buckets[name]
	if !ok || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %s: %s", sentinel.ErrDataConversion, name, err.Error())
	}
	return nil
}

func conversionErr(bucket string, index int, err error) error {
	return fmt.Errorf("%w: %s[%d]: %s", sentinel.ErrDataConversion, bucket, index, err.Error())
}

func fromPerson(p models.Person) jsonPerson {
	return jsonPerson{
		Name:           p.Name().String(),
		Phone:          p.Phone().String(),
		Email:          p.Email().String(),
		Address:        p.Address().String(),
		Nric:           p.Nric().String(),
		Age:            p.Age().String(),
		Region:         p.Region().String(),
		Tags:           stringsOf(p.Tags()),
		AvailableDates: stringsOf(p.AvailableDates()),
	}
}

func (j jsonPerson) toModel() (models.Person, error) {
	if err := validation.Validate(j); err != nil {
		return models.Person{}, err
	}
	var f models.PersonFields
	var err error
	if f.Name, err = models.ParseName(j.Name); err != nil {
		return models.Person{}, err
	}
	if f.Nric, err = models.ParseNric(j.Nric); err != nil {
		return models.Person{}, err
	}
	if j.Phone != "" {
		if f.Phone, err = models.ParsePhone(j.Phone); err != nil {
			return models.Person{}, err
		}
	}
	if j.Email != "" {
		if f.Email, err = models.ParseEmail(j.Email); err != nil {
			return models.Person{}, err
		}
	}
	if j.Address != "" {
		if f.Address, err = models.ParseAddress(j.Address); err != nil {
			return models.Person{}, err
		}
	}
	if j.Age != "" {
		if f.Age, err = models.ParseAge(j.Age); err != nil {
			return models.Person{}, err
		}
	}
	if j.Region != "" {
		if f.Region, err = models.ParseRegion(j.Region); err != nil {
			return models.Person{}, err
		}
	}
	if f.Tags, err = parseAll(j.Tags, models.ParseTag); err != nil {
		return models.Person{}, err
	}
	if f.AvailableDates, err = parseAll(j.AvailableDates, models.ParseAvailableDate); err != nil {
		return models.Person{}, err
	}
	return models.NewPerson(f)
}

func (j jsonElderly) toModel() (models.Elderly, error) {
	p, err := j.jsonPerson.toModel()
	if err != nil {
		return models.Elderly{}, err
	}
	var risk models.RiskLevel
	if j.RiskLevel != "" {
		if risk, err = models.ParseRiskLevel(j.RiskLevel); err != nil {
			return models.Elderly{}, err
		}
	}
	return models.NewElderly(p, risk), nil
}

func (j jsonVolunteer) toModel() (models.Volunteer, error) {
	p, err := j.jsonPerson.toModel()
	if err != nil {
		return models.Volunteer{}, err
	}
	medical, err := parseAll(j.MedicalTags, models.ParseMedicalTag)
	if err != nil {
		return models.Volunteer{}, err
	}
	return models.NewVolunteer(p, medical), nil
}

func (j jsonPair) toModel() (models.PairKey, error) {
	if err := validation.Validate(j); err != nil {
		return models.PairKey{}, err
	}
	e, err := models.ParseNric(j.ElderlyNric)
	if err != nil {
		return models.PairKey{}, err
	}
	v, err := models.ParseNric(j.VolunteerNric)
	if err != nil {
		return models.PairKey{}, err
	}
	return models.PairKey{Elderly: e, Volunteer: v}, nil
}

func parseAll[T any](raw []string, parse func(string) (T, error)) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]T, len(raw))
	for i, r := range raw {
		v, err := parse(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func stringsOf[T fmt.Stringer](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = v.String()
	}
	return out
}
