package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/events"
	"github.com/stretchr/testify/assert"
)

type stubRetriever struct {
	results []models.RawOpportunity
}

func (s stubRetriever) Retrieve(ctx context.Context, queries []models.QuerySpec,
	profile models.UserProfile) []models.RawOpportunity {
	return s.results
}

type stubScorer struct{}

func (stubScorer) Score(ctx context.Context, profile models.UserProfile,
	opportunities []models.CleanOpportunity) []models.ScoredOpportunity {

	var scored []models.ScoredOpportunity
	for i, opp := range opportunities {
		scored = append(scored, models.ScoredOpportunity{
			Title:   opp.Title,
			Company: opp.Company,
			URL:     opp.URL,
			Score:   90 - i,
			Reasons: []string{"stub"},
		})
	}
	return scored
}

func Test_Pipeline_RunProducesCompleteResult(t *testing.T) {

	retriever := stubRetriever{results: []models.RawOpportunity{
		{Title: "ML Intern", Company: "Acme", Location: "Cairo", URL: "https://1"},
		{Title: "Data Intern", Company: "Globex", Location: "Remote", URL: "https://2"},
		{Title: "ml intern", Company: "acme", Location: "Cairo", URL: "https://3"},
	}}

	bus := EventBus.New()
	var published *events.MatchCompleted
	err := bus.Subscribe(events.MatchCompletedTopic, func(event events.MatchCompleted) {
		published = &event
	})
	assert.NoError(t, err)

	pipeline := NewMatchPipeline(bus, retriever, stubScorer{}, 5)

	run := pipeline.Run(context.Background(), models.UserInput{
		AcademicYear: 3,
		Track:        "computer science",
		Skills:       []string{"python", "communication"},
		Preference:   models.PreferenceEgypt,
	})

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", run.RunID.String())
	assert.False(t, run.CreatedAt.IsZero())
	assert.Equal(t, "junior", run.NormalizedProfile.YearLevel)
	assert.NotEmpty(t, run.GeneratedQueries)

	// The duplicate (title, company) pair collapses during cleaning.
	assert.Len(t, run.OpportunitiesTop20, 2)
	assert.Len(t, run.RankedTop5, 2)
	assert.GreaterOrEqual(t, run.RankedTop5[0].Score, run.RankedTop5[1].Score)

	bus.WaitAsync()
	assert.NotNil(t, published)
	assert.Equal(t, run.RunID, published.Run.RunID)
}

func Test_Pipeline_EmptyRetrievalYieldsEmptyResultNotError(t *testing.T) {

	pipeline := NewMatchPipeline(EventBus.New(), stubRetriever{}, stubScorer{}, 5)

	run := pipeline.Run(context.Background(), models.UserInput{
		AcademicYear: 2,
		Track:        "backend",
		Preference:   models.PreferenceRemote,
	})

	assert.Empty(t, run.OpportunitiesTop20)
	assert.Empty(t, run.RankedTop5)
	assert.NotEmpty(t, run.GeneratedQueries)
}
