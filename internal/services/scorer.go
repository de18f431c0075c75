package services

import (
	"context"
	"fmt"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/llmjson"
	"github.com/eduforge/intern-matcher/internal/logger"
	"github.com/eduforge/intern-matcher/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	fallbackScore     = 50
	maxReasons        = 5
	scoringSystemRole = "You are a helpful career advisor. Return only valid JSON."
)

type aiClient interface {
	Complete(ctx context.Context, prompt string, systemPrompt string) (string, error)
}

// OpportunityScorer asks the LLM for a 0-100 match score per opportunity, one
// call per item. Any failure — transport error, malformed JSON, missing keys —
// is absorbed locally with the fallback score; it never reaches the caller.
type OpportunityScorer struct {
	ai aiClient
}

func NewOpportunityScorer(ai aiClient) *OpportunityScorer {
	return &OpportunityScorer{ai: ai}
}

func (s *OpportunityScorer) Score(ctx context.Context, profile models.UserProfile,
	opportunities []models.CleanOpportunity) []models.ScoredOpportunity {

	scored := make([]models.ScoredOpportunity, 0, len(opportunities))
	for _, opp := range opportunities {

		score, reasons, err := s.scoreOne(ctx, profile, opp)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
				Errorf("failed to score opportunity %v: %v", opp.URL, err)
			metrics.FallbackScoresCounter.Inc()
			score, reasons = fallbackScore, []string{"General internship opportunity."}
		}

		scored = append(scored, models.ScoredOpportunity{
			Title:    opp.Title,
			Company:  opp.Company,
			Location: opp.Location,
			URL:      opp.URL,
			Source:   opp.Source,
			WorkType: opp.WorkType,
			Score:    score,
			Reasons:  reasons,
		})
	}

	log.Infof("scored %v opportunities", len(scored))
	return scored
}

func (s *OpportunityScorer) scoreOne(ctx context.Context, profile models.UserProfile,
	opp models.CleanOpportunity) (int, []string, error) {

	response, err := s.ai.Complete(ctx, scoringPrompt(profile, opp), scoringSystemRole)
	if err != nil {
		return 0, nil, err
	}

	obj, err := llmjson.DecodeObject(response)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed scoring response: %w", err)
	}

	if !llmjson.Has(obj, "score") || !llmjson.Has(obj, "reasons") {
		return 0, nil, fmt.Errorf("scoring response lacks required keys")
	}

	score := clamp(llmjson.Int(obj, "score", fallbackScore), 0, 100)
	reasons := llmjson.StringSlice(obj, "reasons", []string{"General internship opportunity."})
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return score, reasons, nil
}

func scoringPrompt(profile models.UserProfile, opp models.CleanOpportunity) string {

	skills := profile.SkillsSummary()
	if skills == "" {
		skills = "Not specified"
	}

	description := opp.Description
	if runes := []rune(description); len(runes) > 800 {
		description = string(runes[:800])
	}
	if description == "" {
		description = "No description available"
	}

	return fmt.Sprintf(`You are a career advisor scoring a job opportunity for a student.

**Student Profile:**
- Track/Major: %s
- Skills: %s
- Academic Year: %s
- Location Preference: %s

**Job Opportunity:**
- Title: %s
- Company: %s
- Location: %s
- Description: %s

Score this job match from 0-100 based on:
1. Skills alignment (40%%)
2. Role fit for their academic level (25%%)
3. Location preference match (20%%)
4. Career growth potential (15%%)

Also provide 3-4 specific reasons explaining the score.

Return ONLY valid JSON in this exact format:
{"score": 75, "reasons": ["Reason 1", "Reason 2", "Reason 3"]}`,
		profile.Track, skills, profile.YearLevel, profile.LocationPreference,
		opp.Title, opp.Company, opp.Location, description)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
