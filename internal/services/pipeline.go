package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/events"
	"github.com/eduforge/intern-matcher/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type opportunityRetriever interface {
	Retrieve(ctx context.Context, queries []models.QuerySpec, profile models.UserProfile) []models.RawOpportunity
}

type opportunityScorer interface {
	Score(ctx context.Context, profile models.UserProfile, opportunities []models.CleanOpportunity) []models.ScoredOpportunity
}

// MatchPipeline runs one matching request end to end: normalize, build
// queries, retrieve, clean, score, rank, assemble. Execution is a single
// straight-line sequence; each run is independent and stateless.
type MatchPipeline struct {
	bus       EventBus.Bus
	retriever opportunityRetriever
	scorer    opportunityScorer
	topK      int
}

func NewMatchPipeline(bus EventBus.Bus, retriever opportunityRetriever,
	scorer opportunityScorer, topK int) *MatchPipeline {

	return &MatchPipeline{
		bus:       bus,
		retriever: retriever,
		scorer:    scorer,
		topK:      topK,
	}
}

func (p *MatchPipeline) Run(ctx context.Context, input models.UserInput) models.MatchRun {

	startTime := time.Now()
	log.Infof("running match for track %q, preference %q", input.Track, input.Preference)

	profile := NormalizeProfile(input)
	queries := BuildQueries(profile)

	start := time.Now()
	raw := p.retriever.Retrieve(ctx, queries, profile)
	metrics.PipelineStepDuration.WithLabelValues("retrieve").Observe(time.Since(start).Seconds())

	cleaned := CleanOpportunities(raw)

	start = time.Now()
	scored := p.scorer.Score(ctx, profile, cleaned)
	metrics.PipelineStepDuration.WithLabelValues("score").Observe(time.Since(start).Seconds())

	ranked := RankOpportunities(scored, p.topK)

	run := models.NewMatchRun(profile, queries, cleaned, ranked)

	metrics.MatchRunDuration.Observe(time.Since(startTime).Seconds())
	metrics.CompletedRunsCounter.Inc()
	log.Infof("match run %v completed after %v", run.RunID, time.Since(startTime))

	p.bus.Publish(events.MatchCompletedTopic, events.MatchCompleted{Run: run})

	return run
}
