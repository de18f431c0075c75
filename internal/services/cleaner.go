package services

import (
	"strings"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	log "github.com/sirupsen/logrus"
)

// CleanOpportunities deduplicates by lowercased (title, company) and infers a
// work type from the location field. This key is weaker than the retriever's
// URL key, so two postings with different URLs but the same title and company
// collapse here; that mirrors treating them as one posting across sources.
func CleanOpportunities(raw []models.RawOpportunity) []models.CleanOpportunity {

	type dedupKey struct{ title, company string }

	seen := map[dedupKey]bool{}
	var cleaned []models.CleanOpportunity

	for _, item := range raw {
		key := dedupKey{strings.ToLower(item.Title), strings.ToLower(item.Company)}
		if seen[key] {
			continue
		}
		seen[key] = true

		location := strings.TrimSpace(item.Location)

		var workType models.WorkType
		locationLower := strings.ToLower(item.Location)
		switch {
		case strings.Contains(locationLower, "remote"):
			workType = models.WorkTypeRemote
		case strings.Contains(locationLower, "hybrid"):
			workType = models.WorkTypeHybrid
		case item.Location != "":
			workType = models.WorkTypeOnSite
		}

		if location == "" {
			location = "Unknown"
		}

		cleaned = append(cleaned, models.CleanOpportunity{
			Title:       strings.TrimSpace(item.Title),
			Company:     strings.TrimSpace(item.Company),
			Location:    location,
			URL:         item.URL,
			Source:      item.Source,
			Description: item.Snippet,
			WorkType:    workType,
			PostedDate:  item.PostedDate,
		})
	}

	log.Infof("cleaned down to %v opportunities", len(cleaned))
	return cleaned
}
