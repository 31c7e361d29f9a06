package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"friendlylink/internal/command"
	dErrors "friendlylink/pkg/domain-errors"
)

// ArgumentMultimap is the tokenized form of a command's arguments.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Tokenize splits args into a preamble and the values following each
// declared prefix. A prefix only counts at the start of args or after
// whitespace; anywhere else it is literal text. Values are trimmed, and a
// prefix followed by nothing yields an empty value.
//
// An empty or repeated declared prefix is a programming error and returns
// a CodeInternal error.
func Tokenize(args string, prefixes ...Prefix) (*ArgumentMultimap, error) {
	if err := checkDeclared(prefixes); err != nil {
		return nil, err
	}

	type match struct {
		prefix Prefix
		start  int
	}
	var matches []match
	for i := 0; i < len(args); {
		if i == 0 || isSpaceBefore(args, i) {
			if p, ok := prefixAt(args, i, prefixes); ok {
				matches = append(matches, match{prefix: p, start: i})
				i += len(p)
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(args[i:])
		i += size
	}

	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(matches) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m, nil
	}
	m.preamble = strings.TrimSpace(args[:matches[0].start])
	for i, mt := range matches {
		end := len(args)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		value := strings.TrimSpace(args[mt.start+len(mt.prefix) : end])
		m.values[mt.prefix] = append(m.values[mt.prefix], value)
	}
	return m, nil
}

func checkDeclared(prefixes []Prefix) error {
	seen := make(map[Prefix]struct{}, len(prefixes))
	for _, p := range prefixes {
		if p == "" {
			return dErrors.New(dErrors.CodeInternal, "empty prefix declared")
		}
		if _, dup := seen[p]; dup {
			return dErrors.New(dErrors.CodeInternal, fmt.Sprintf("prefix %s declared more than once", p))
		}
		seen[p] = struct{}{}
	}
	return nil
}

func isSpaceBefore(s string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

// prefixAt returns the longest declared prefix starting at i.
func prefixAt(s string, i int, prefixes []Prefix) (Prefix, bool) {
	var best Prefix
	for _, p := range prefixes {
		if len(p) > len(best) && strings.HasPrefix(s[i:], string(p)) {
			best = p
		}
	}
	return best, best != ""
}

func (m *ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns a copy of every value given for p, in input order.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

func (m *ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// ArePrefixesPresent reports whether every one of ps appears.
func (m *ArgumentMultimap) ArePrefixesPresent(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails when any of ps appears more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(ps ...Prefix) error {
	var dups []string
	for _, p := range ps {
		if len(m.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf(command.MessageDuplicateFields, strings.Join(dups, " ")))
}
