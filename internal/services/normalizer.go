package services

import (
	"sort"
	"strings"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/samber/lo"
)

var yearLevels = map[int]string{
	1: "freshman",
	2: "sophomore",
	3: "junior",
	4: "senior",
	5: "graduate",
}

var softSkills = map[string]bool{
	"communication":   true,
	"teamwork":        true,
	"leadership":      true,
	"collaboration":   true,
	"problem solving": true,
}

var toolSkills = map[string]bool{
	"sql":        true,
	"pandas":     true,
	"tensorflow": true,
	"pytorch":    true,
	"docker":     true,
	"aws":        true,
	"git":        true,
	"excel":      true,
}

// NormalizeProfile maps raw user input into a structured profile. Every field
// has a default-safe fallback, so normalization cannot fail: unknown years map
// to "unknown" and unrecognized skills land in the hard bucket.
func NormalizeProfile(input models.UserInput) models.UserProfile {

	yearLevel, ok := yearLevels[input.AcademicYear]
	if !ok {
		yearLevel = "unknown"
	}

	var hard, tools, soft []string
	for _, skill := range input.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}

		switch {
		case softSkills[skill]:
			soft = append(soft, skill)
		case toolSkills[skill]:
			tools = append(tools, skill)
		default:
			hard = append(hard, skill)
		}
	}

	return models.UserProfile{
		YearLevel:          yearLevel,
		Track:              strings.ToLower(strings.TrimSpace(input.Track)),
		LocationPreference: input.Preference,
		Skills: models.SkillBuckets{
			Hard:  sortedUnique(hard),
			Tools: sortedUnique(tools),
			Soft:  sortedUnique(soft),
		},
		SeniorityTarget: "intern",
	}
}

func sortedUnique(skills []string) []string {
	unique := lo.Uniq(skills)
	sort.Strings(unique)
	return unique
}
