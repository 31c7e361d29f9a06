package parser

import (
	"slices"
	"strings"

	"friendlylink/internal/command"
	s "friendlylink/pkg/platform/strings"
)

var findPrefixes = []Prefix{PrefixName, PrefixNric, PrefixRegion, PrefixTag}

// ParseFind parses "[n/KEYWORDS] [ic/NRIC] [r/REGION] [t/TAG]...". At least
// one criterion is required.
func ParseFind(args string) (command.Find, error) {
	m, err := Tokenize(args, findPrefixes...)
	if err != nil {
		return command.Find{}, err
	}
	if m.Preamble() != "" {
		return command.Find{}, invalidFormat(command.UsageFind)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixNric, PrefixRegion); err != nil {
		return command.Find{}, err
	}

	var c command.FindCriteria
	if raw, ok := m.Value(PrefixName); ok {
		c.NameKeywords = s.Keywords(raw)
		if len(c.NameKeywords) == 0 {
			return command.Find{}, invalidFormat(command.UsageFind)
		}
	}
	if err := parseOptional(m, PrefixNric, &c.Nric, ParseNric); err != nil {
		return command.Find{}, err
	}
	if err := parseOptional(m, PrefixRegion, &c.Region, ParseRegion); err != nil {
		return command.Find{}, err
	}
	if c.Tags, err = ParseTags(m.AllValues(PrefixTag)); err != nil {
		return command.Find{}, err
	}

	if c.IsEmpty() {
		return command.Find{}, invalidFormat(command.UsageFind)
	}
	return command.Find{Criteria: c}, nil
}

// ParseList parses an optional list kind.
func ParseList(args string) (command.List, error) {
	kind := command.ListKind(strings.ToLower(strings.TrimSpace(args)))
	if kind == command.ListAll || slices.Contains(command.ListKinds, kind) {
		return command.List{Kind: kind}, nil
	}
	return command.List{}, invalidFormat(command.UsageList)
}
