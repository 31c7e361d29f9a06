package models

// Elderly is a person receiving visits. Risk level is optional.
type Elderly struct {
	Person
	risk RiskLevel
}

func NewElderly(p Person, risk RiskLevel) Elderly {
	return Elderly{Person: p, risk: risk}
}

func (e Elderly) Category() Category   { return CategoryElderly }
func (e Elderly) RiskLevel() RiskLevel { return e.risk }

// IsSame compares identity only.
func (e Elderly) IsSame(other Elderly) bool {
	return e.Nric() == other.Nric()
}

func (e Elderly) Equal(other Elderly) bool {
	return e.risk == other.risk && e.Person.Equal(other.Person)
}

func (e Elderly) String() string {
	s := e.Person.String()
	if !e.risk.IsZero() {
		s += "; Risk level: " + e.risk.String()
	}
	return s
}
