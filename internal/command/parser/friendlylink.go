// Package parser turns a command line into an executable command. Parsing
// checks format only; whether referenced records exist is decided when the
// command runs.
package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"friendlylink/internal/command"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/validation"
)

// FriendlyLinkParser dispatches on the first word of a line.
type FriendlyLinkParser struct {
	parsers map[string]func(args string) (command.Command, error)
}

func New() *FriendlyLinkParser {
	return &FriendlyLinkParser{parsers: map[string]func(string) (command.Command, error){
		command.WordAddElderly:      adapt(ParseAddElderly),
		command.WordAddVolunteer:    adapt(ParseAddVolunteer),
		command.WordEdit:            adapt(ParseEdit),
		command.WordDeleteElderly:   adapt(ParseDeleteElderly),
		command.WordDeleteVolunteer: adapt(ParseDeleteVolunteer),
		command.WordPair:            adapt(ParsePair),
		command.WordUnpair:          adapt(ParseUnpair),
		command.WordFind:            adapt(ParseFind),
		command.WordList:            adapt(ParseList),
		command.WordStats:           noArgs(command.Stats{}, command.UsageStats),
		command.WordClear:           noArgs(command.Clear{}, command.UsageClear),
		command.WordHelp:            noArgs(command.Help{}, command.UsageHelp),
		command.WordExit:            noArgs(command.Exit{}, command.UsageExit),
	}}
}

// ParseCommand parses one line of user input.
func (p *FriendlyLinkParser) ParseCommand(line string) (command.Command, error) {
	if utf8.RuneCountInString(line) > validation.MaxCommandLength {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf(command.MessageCommandTooLong, validation.MaxCommandLength))
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, invalidFormat(command.UsageHelp)
	}
	word, args := splitWord(trimmed)
	parse, ok := p.parsers[word]
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, command.MessageUnknownCommand)
	}
	return parse(args)
}

// CommandWord extracts the first word of line, for metrics and tracing.
// Unknown words map to "unknown" to keep label cardinality bounded.
func (p *FriendlyLinkParser) CommandWord(line string) string {
	word, _ := splitWord(strings.TrimSpace(line))
	if _, ok := p.parsers[word]; ok {
		return word
	}
	return "unknown"
}

// splitWord cuts s at its first whitespace rune, whichever kind it is.
func splitWord(s string) (word, args string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}

func adapt[C command.Command](parse func(string) (C, error)) func(string) (command.Command, error) {
	return func(args string) (command.Command, error) {
		c, err := parse(args)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func noArgs(c command.Command, usage string) func(string) (command.Command, error) {
	return func(args string) (command.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, invalidFormat(usage)
		}
		return c, nil
	}
}
