package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchRun is the terminal aggregate of one matching request. It is immutable
// once assembled and is the only object returned to the API boundary.
type MatchRun struct {
	RunID              uuid.UUID           `json:"run_id"`
	CreatedAt          time.Time           `json:"created_at"`
	NormalizedProfile  UserProfile         `json:"normalized_profile"`
	GeneratedQueries   []QuerySpec         `json:"generated_queries"`
	OpportunitiesTop20 []CleanOpportunity  `json:"opportunities_top20"`
	RankedTop5         []ScoredOpportunity `json:"ranked_top5"`
}

func NewMatchRun(profile UserProfile, queries []QuerySpec,
	cleaned []CleanOpportunity, ranked []ScoredOpportunity) MatchRun {

	return MatchRun{
		RunID:              uuid.New(),
		CreatedAt:          time.Now().UTC(),
		NormalizedProfile:  profile,
		GeneratedQueries:   queries,
		OpportunitiesTop20: cleaned,
		RankedTop5:         ranked,
	}
}
