package services

import (
	"strings"
	"testing"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func egyptProfile() models.UserProfile {
	return models.UserProfile{
		YearLevel:          "junior",
		Track:              "computer science",
		LocationPreference: models.PreferenceEgypt,
		Skills: models.SkillBuckets{
			Hard:  []string{"machine learning", "python"},
			Tools: []string{"sql"},
		},
		SeniorityTarget: "intern",
	}
}

func Test_BuildQueries_EgyptBranchEmitsArabicAndLocalQueries(t *testing.T) {

	queries := BuildQueries(egyptProfile())

	hasArabic := false
	hasLocal := false
	for _, q := range queries {
		if strings.Contains(q.Query, "تدريب") {
			hasArabic = true
		}
		if strings.Contains(q.Query, "Cairo") || strings.Contains(q.Query, "Egypt") {
			hasLocal = true
		}
	}

	assert.True(t, hasArabic, "expected at least one Arabic-script query")
	assert.True(t, hasLocal, "expected at least one Cairo/Egypt query")
	assert.GreaterOrEqual(t, len(queries), 4)
	assert.LessOrEqual(t, len(queries), 7)
}

func Test_BuildQueries_SkillClauseUsesAtMostThreeSkills(t *testing.T) {

	profile := egyptProfile()
	profile.Skills.Hard = []string{"a-skill", "b-skill", "c-skill", "d-skill"}
	profile.Skills.Tools = nil

	queries := BuildQueries(profile)

	for _, q := range queries {
		assert.NotContains(t, q.Query, "d-skill")
	}
}

func Test_BuildQueries_UnrecognizedTrackFallsBackToGenericTitles(t *testing.T) {

	profile := egyptProfile()
	profile.Track = "astrophysics"
	profile.LocationPreference = models.PreferenceHybrid

	queries := BuildQueries(profile)

	assert.Len(t, queries, 2)
	assert.Contains(t, queries[0].Query, "Intern")
}

func Test_BuildQueries_RemoteBranch(t *testing.T) {

	profile := egyptProfile()
	profile.LocationPreference = models.PreferenceRemote

	queries := BuildQueries(profile)

	assert.Len(t, queries, 3)
	for _, q := range queries {
		assert.True(t, strings.Contains(strings.ToLower(q.Query), "remote") ||
			strings.Contains(strings.ToLower(q.Query), "work from home"))
	}
}

func Test_BuildQueries_AbroadBranchMentionsVisaSponsorship(t *testing.T) {

	profile := egyptProfile()
	profile.LocationPreference = models.PreferenceAbroad

	queries := BuildQueries(profile)

	hasVisa := false
	for _, q := range queries {
		if strings.Contains(q.Query, "visa sponsorship") {
			hasVisa = true
		}
	}
	assert.True(t, hasVisa)
}
