package parser

// Prefix marks the start of a field value in a command, for example "n/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// Canonical prefixes.
const (
	PrefixName          Prefix = "n/"
	PrefixPhone         Prefix = "p/"
	PrefixEmail         Prefix = "e/"
	PrefixAddress       Prefix = "a/"
	PrefixNric          Prefix = "ic/"
	PrefixAge           Prefix = "ag/"
	PrefixRegion        Prefix = "r/"
	PrefixRiskLevel     Prefix = "rl/"
	PrefixTag           Prefix = "t/"
	PrefixMedicalTag    Prefix = "mt/"
	PrefixAvailableDate Prefix = "dr/"
	PrefixElderlyNric   Prefix = "nl/"
	PrefixVolunteerNric Prefix = "nv/"
)

// Prefixes shared by both person categories.
var personPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixNric,
	PrefixAge, PrefixRegion, PrefixTag, PrefixAvailableDate,
}

// singleValued lists the prefixes that may appear at most once.
var singleValued = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixNric,
	PrefixAge, PrefixRegion, PrefixRiskLevel, PrefixElderlyNric, PrefixVolunteerNric,
}
