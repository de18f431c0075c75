package services

import (
	"sort"
	"strings"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	log "github.com/sirupsen/logrus"
)

// maxPerCompany is a fixed business rule, not a tunable.
const maxPerCompany = 2

// RankOpportunities sorts by score descending and applies the per-company
// diversity cap. The sort is stable, so ties keep their input order and the
// output is deterministic. Items over the cap are skipped, not replaced.
func RankOpportunities(scored []models.ScoredOpportunity, topK int) []models.ScoredOpportunity {

	sorted := make([]models.ScoredOpportunity, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	var top []models.ScoredOpportunity
	companyCounts := map[string]int{}

	for _, item := range sorted {
		companyKey := strings.ToLower(item.Company)
		if companyCounts[companyKey] >= maxPerCompany {
			continue
		}

		top = append(top, item)
		companyCounts[companyKey]++

		if len(top) >= topK {
			break
		}
	}

	log.Infof("ranked top %v opportunities", len(top))
	return top
}
