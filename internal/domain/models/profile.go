package models

import (
	"strings"

	"github.com/samber/lo"
)

type LocationPreference string

const (
	PreferenceEgypt  LocationPreference = "egypt"
	PreferenceRemote LocationPreference = "remote"
	PreferenceAbroad LocationPreference = "abroad"
	PreferenceHybrid LocationPreference = "hybrid"
)

func ToLocationPreference(s string) (LocationPreference, bool) {
	switch LocationPreference(strings.ToLower(strings.TrimSpace(s))) {
	case PreferenceEgypt:
		return PreferenceEgypt, true
	case PreferenceRemote:
		return PreferenceRemote, true
	case PreferenceAbroad:
		return PreferenceAbroad, true
	case PreferenceHybrid:
		return PreferenceHybrid, true
	default:
		return "", false
	}
}

// UserInput is the raw match request, discarded after normalization.
type UserInput struct {
	AcademicYear int                `json:"academic_year"`
	Track        string             `json:"track"`
	Skills       []string           `json:"skills"`
	Preference   LocationPreference `json:"preference"`
	Notes        string             `json:"notes,omitempty"`
}

// SkillBuckets holds the three disjoint skill categories. Classification is
// first-match-wins against the static soft/tool keyword sets.
type SkillBuckets struct {
	Hard  []string `json:"hard"`
	Tools []string `json:"tools"`
	Soft  []string `json:"soft"`
}

func (b SkillBuckets) All() []string {
	all := make([]string, 0, len(b.Hard)+len(b.Tools)+len(b.Soft))
	all = append(all, b.Hard...)
	all = append(all, b.Tools...)
	all = append(all, b.Soft...)
	return all
}

type UserProfile struct {
	YearLevel          string             `json:"year_level"`
	Track              string             `json:"track"`
	LocationPreference LocationPreference `json:"location_preference"`
	Skills             SkillBuckets       `json:"skills"`
	SeniorityTarget    string             `json:"seniority_target"`
}

func (p UserProfile) SkillsSummary() string {
	return strings.Join(lo.Uniq(p.Skills.All()), ", ")
}
