package services

import (
	"context"
	"fmt"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/logger"
	log "github.com/sirupsen/logrus"
)

type searchClient interface {
	Search(ctx context.Context, query string, limit int) ([]models.RawOpportunity, error)
}

// OpportunityRetriever collects search results for the generated queries,
// deduplicating by URL. Queries are issued sequentially; once the accumulated
// unique count reaches the target the remaining queries are skipped. If the
// primary queries under-fill, a location-specific fallback list is tried.
// Under-fill is a silent outcome, not an error.
type OpportunityRetriever struct {
	client     searchClient
	maxResults int
}

func NewOpportunityRetriever(client searchClient, maxResults int) *OpportunityRetriever {
	return &OpportunityRetriever{client: client, maxResults: maxResults}
}

func (r *OpportunityRetriever) Retrieve(ctx context.Context, queries []models.QuerySpec,
	profile models.UserProfile) []models.RawOpportunity {

	var results []models.RawOpportunity
	seenURLs := map[string]bool{}

	for _, query := range queries {
		if len(results) >= r.maxResults {
			break
		}
		results = r.collect(ctx, query.Query, r.maxResults, results, seenURLs)
	}

	if len(results) < r.maxResults {
		for _, fallback := range fallbackQueries(profile) {
			if len(results) >= r.maxResults {
				break
			}
			results = r.collect(ctx, fallback, r.maxResults-len(results), results, seenURLs)
		}
	}

	if len(results) > r.maxResults {
		results = results[:r.maxResults]
	}

	log.Infof("retrieved %v opportunities, required %v", len(results), r.maxResults)
	return results
}

func (r *OpportunityRetriever) collect(ctx context.Context, query string, limit int,
	results []models.RawOpportunity, seenURLs map[string]bool) []models.RawOpportunity {

	found, err := r.client.Search(ctx, query, limit)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSearchApi).
			Errorf("search failed for query %q: %v", query, err)
		return results
	}

	for _, item := range found {
		if seenURLs[item.URL] {
			continue
		}
		seenURLs[item.URL] = true
		results = append(results, item)
	}
	return results
}

func fallbackQueries(profile models.UserProfile) []string {
	switch profile.LocationPreference {
	case models.PreferenceEgypt:
		return []string{
			fmt.Sprintf("internship Cairo Egypt %s", profile.Track),
			"تدريب صيفي مصر برمجة",
			"junior developer Egypt Cairo",
			"software internship Egypt 2024 2025",
			"Vodafone Egypt internship",
			"Orange Egypt graduate program",
			"tech internship Egypt",
		}
	case models.PreferenceRemote:
		return []string{
			fmt.Sprintf("remote internship %s worldwide", profile.Track),
			"work from home internship software",
			"remote junior developer position",
			"virtual internship tech",
		}
	case models.PreferenceAbroad:
		return []string{
			fmt.Sprintf("internship %s USA visa sponsorship", profile.Track),
			"internship Europe software",
			"internship UAE Dubai tech",
			"international internship program",
		}
	default:
		return []string{
			fmt.Sprintf("%s internship 2024", profile.Track),
			"software engineer intern",
			"data science internship",
		}
	}
}
