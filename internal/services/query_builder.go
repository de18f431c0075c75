package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var trackTitles = map[string][]string{
	"computer science":     {"Software Engineer Intern", "Data Science Intern", "ML Intern"},
	"data science":         {"Data Science Intern", "Machine Learning Intern", "Data Analyst Intern"},
	"ai engineer":          {"AI Intern", "Machine Learning Intern"},
	"data engineer":        {"Data Engineering Intern", "ETL Intern"},
	"backend":              {"Backend Intern", "Software Engineer Intern"},
	"software engineering": {"Software Engineer Intern", "Full Stack Intern", "Backend Intern"},
	"cybersecurity":        {"Cybersecurity Intern", "Security Analyst Intern"},
	"business":             {"Business Analyst Intern", "Product Intern"},
}

// BuildQueries expands a normalized profile into search queries, branching on
// the location preference. Templates are hand-authored per branch; there is no
// query expansion beyond them.
func BuildQueries(profile models.UserProfile) []models.QuerySpec {

	titles, ok := trackTitles[profile.Track]
	if !ok {
		titles = []string{"Intern", "Internship"}
	}

	skills := append(append([]string{}, profile.Skills.Hard...), profile.Skills.Tools...)
	skillClause := ""
	if len(skills) > 0 {
		unique := lo.Uniq(skills)
		sort.Strings(unique)
		skillClause = strings.Join(unique[:min(3, len(unique))], " ")
	}

	var queries []models.QuerySpec

	switch profile.LocationPreference {
	case models.PreferenceEgypt:
		for _, title := range titles[:min(2, len(titles))] {
			queries = append(queries, models.QuerySpec{
				Query:     fmt.Sprintf("%s internship Egypt Cairo %s", title, skillClause),
				Provider:  "search",
				Rationale: fmt.Sprintf("Search for %s in Egypt", title),
			})
			queries = append(queries, models.QuerySpec{
				Query:     fmt.Sprintf("تدريب %s مصر %s", title, skillClause),
				Provider:  "search",
				Rationale: fmt.Sprintf("Arabic search for %s internship", title),
			})
		}
		queries = append(queries, models.QuerySpec{
			Query:     fmt.Sprintf("internship %s Cairo Egypt 2024 2025 %s", profile.Track, skillClause),
			Provider:  "search",
			Rationale: "General Egypt internship search",
		})
		queries = append(queries, models.QuerySpec{
			Query:     fmt.Sprintf("software intern Egypt Vodafone Orange Valeo IBM %s", skillClause),
			Provider:  "search",
			Rationale: "Major Egyptian tech companies",
		})

	case models.PreferenceRemote:
		for _, title := range titles[:min(2, len(titles))] {
			queries = append(queries, models.QuerySpec{
				Query:     fmt.Sprintf("%s internship remote worldwide %s", title, skillClause),
				Provider:  "search",
				Rationale: fmt.Sprintf("Remote %s search", title),
			})
		}
		queries = append(queries, models.QuerySpec{
			Query:     fmt.Sprintf("remote internship %s work from home %s", profile.Track, skillClause),
			Provider:  "search",
			Rationale: "Remote work internship",
		})

	case models.PreferenceAbroad:
		for _, title := range titles[:min(2, len(titles))] {
			queries = append(queries, models.QuerySpec{
				Query:     fmt.Sprintf("%s internship international visa sponsorship %s", title, skillClause),
				Provider:  "search",
				Rationale: fmt.Sprintf("International %s with visa", title),
			})
		}
		queries = append(queries, models.QuerySpec{
			Query:     fmt.Sprintf("internship %s USA Europe UAE %s", profile.Track, skillClause),
			Provider:  "search",
			Rationale: "International markets search",
		})

	default:
		for _, title := range titles[:min(2, len(titles))] {
			queries = append(queries, models.QuerySpec{
				Query:     fmt.Sprintf("%s internship %s", title, skillClause),
				Provider:  "search",
				Rationale: fmt.Sprintf("General %s search", title),
			})
		}
	}

	log.Infof("built %v queries for track %q", len(queries), profile.Track)
	return queries
}
