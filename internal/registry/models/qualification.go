package models

import (
	"fmt"
	"regexp"
	"strings"
)

const MedicalTagConstraints = "Medical qualifications should be of the format SKILL, LEVEL " +
	"where SKILL is alphanumeric and LEVEL is one of BASIC, INTERMEDIATE or ADVANCED"

// QualificationLevel grades a volunteer's medical skill.
type QualificationLevel string

const (
	LevelBasic        QualificationLevel = "BASIC"
	LevelIntermediate QualificationLevel = "INTERMEDIATE"
	LevelAdvanced     QualificationLevel = "ADVANCED"
)

var skillPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// MedicalQualificationTag is a skill held by a volunteer at some level.
type MedicalQualificationTag struct {
	skill string
	level QualificationLevel
}

// ParseMedicalTag accepts "CPR, BASIC" style input.
func ParseMedicalTag(raw string) (MedicalQualificationTag, error) {
	skill, level, ok := strings.Cut(raw, ",")
	if !ok {
		return MedicalQualificationTag{}, invalid(MedicalTagConstraints)
	}
	skill = strings.Join(strings.Fields(skill), " ")
	if !skillPattern.MatchString(skill) {
		return MedicalQualificationTag{}, invalid(MedicalTagConstraints)
	}
	switch l := QualificationLevel(strings.ToUpper(strings.TrimSpace(level))); l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return MedicalQualificationTag{skill: skill, level: l}, nil
	default:
		return MedicalQualificationTag{}, invalid(MedicalTagConstraints)
	}
}

func (m MedicalQualificationTag) Skill() string             { return m.skill }
func (m MedicalQualificationTag) Level() QualificationLevel { return m.level }

func (m MedicalQualificationTag) String() string {
	return fmt.Sprintf("%s, %s", m.skill, m.level)
}
