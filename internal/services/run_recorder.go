package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/eduforge/intern-matcher/internal/events"
	"github.com/eduforge/intern-matcher/internal/logger"
	log "github.com/sirupsen/logrus"
)

type runRepository interface {
	Add(ctx context.Context, run models.MatchRun) error
}

// RunRecorder persists completed runs off the completion event, keeping the
// pipeline itself free of any persistence concern. A failed write is logged
// and dropped; history is best-effort.
type RunRecorder struct {
	runs runRepository
}

func NewRunRecorder(bus EventBus.Bus, runs runRepository) (*RunRecorder, error) {

	r := &RunRecorder{runs: runs}
	if err := bus.Subscribe(events.MatchCompletedTopic, r.onMatchCompleted); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RunRecorder) onMatchCompleted(event events.MatchCompleted) {
	if err := r.runs.Add(context.Background(), event.Run); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to record match run %v: %v", event.Run.RunID, err)
	}
}
