package models

import (
	"slices"
	"strings"

	dErrors "friendlylink/pkg/domain-errors"
)

// Category names the two kinds of person kept in the registry.
type Category string

const (
	CategoryElderly   Category = "elderly"
	CategoryVolunteer Category = "volunteer"
)

func (c Category) String() string { return string(c) }

// Member is the accessor contract shared by elderly and volunteers.
type Member interface {
	Category() Category
	Nric() Nric
	Name() Name
	Phone() Phone
	Email() Email
	Address() Address
	Age() Age
	Region() Region
	Tags() []Tag
	HasTag(tag Tag) bool
	AvailableDates() []AvailableDate
}

// PersonFields is the mutable builder form of a Person.
type PersonFields struct {
	Name           Name
	Phone          Phone
	Email          Email
	Address        Address
	Nric           Nric
	Age            Age
	Region         Region
	Tags           []Tag
	AvailableDates []AvailableDate
}

// Person is the record shape shared by both categories. It is immutable:
// edits go through Fields and NewPerson.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	nric    Nric
	age     Age
	region  Region
	tags    []Tag
	dates   []AvailableDate
}

// NewPerson builds a Person. Name and NRIC are mandatory.
func NewPerson(f PersonFields) (Person, error) {
	if f.Name.IsZero() {
		return Person{}, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if f.Nric.IsZero() {
		return Person{}, dErrors.New(dErrors.CodeInvalidInput, "NRIC is required")
	}
	return Person{
		name:    f.Name,
		phone:   f.Phone,
		email:   f.Email,
		address: f.Address,
		nric:    f.Nric,
		age:     f.Age,
		region:  f.Region,
		tags:    normalizeSet(f.Tags),
		dates:   normalizeSet(f.AvailableDates),
	}, nil
}

func (p Person) Name() Name       { return p.name }
func (p Person) Phone() Phone     { return p.phone }
func (p Person) Email() Email     { return p.email }
func (p Person) Address() Address { return p.address }
func (p Person) Nric() Nric       { return p.nric }
func (p Person) Age() Age         { return p.age }
func (p Person) Region() Region   { return p.region }

func (p Person) Tags() []Tag                     { return slices.Clone(p.tags) }
func (p Person) AvailableDates() []AvailableDate { return slices.Clone(p.dates) }

// Fields returns a copy of the record for building an edited Person.
func (p Person) Fields() PersonFields {
	return PersonFields{
		Name:           p.name,
		Phone:          p.phone,
		Email:          p.email,
		Address:        p.address,
		Nric:           p.nric,
		Age:            p.age,
		Region:         p.region,
		Tags:           p.Tags(),
		AvailableDates: p.AvailableDates(),
	}
}

// HasTag reports whether the person carries the tag, ignoring case.
func (p Person) HasTag(tag Tag) bool {
	return slices.ContainsFunc(p.tags, func(t Tag) bool { return strings.EqualFold(string(t), string(tag)) })
}

// Equal compares every field.
func (p Person) Equal(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address &&
		p.nric == other.nric &&
		p.age == other.age &&
		p.region == other.region &&
		setsEqual(p.tags, other.tags) &&
		setsEqual(p.dates, other.dates)
}

func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	b.WriteString("; NRIC: ")
	b.WriteString(p.nric.String())
	writeOptional(&b, "Phone", p.phone.String())
	writeOptional(&b, "Email", p.email.String())
	writeOptional(&b, "Address", p.address.String())
	writeOptional(&b, "Age", p.age.String())
	writeOptional(&b, "Region", p.region.String())
	writeOptional(&b, "Tags", joinSet(p.tags))
	writeOptional(&b, "Available", joinSet(p.dates))
	return b.String()
}

func writeOptional(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("; ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
}
