package services

import (
	"context"
	"time"

	"github.com/eduforge/intern-matcher/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type runHistory interface {
	RemoveOldRuns(ctx context.Context, expirationTime time.Time) (int64, error)
}

// RunsCleaner enforces the run-history retention window: once a day it prunes
// every stored run older than the configured number of days.
type RunsCleaner struct {
	history       runHistory
	cron          *cron.Cron
	retentionDays int
}

func NewRunsCleaner(history runHistory, retentionDays int) (*RunsCleaner, error) {

	if retentionDays <= 0 {
		return nil, errors.New("retention days must be greater than zero")
	}

	rc := &RunsCleaner{
		history:       history,
		cron:          cron.New(),
		retentionDays: retentionDays,
	}

	_, err := rc.cron.AddFunc("0 0 * * *", rc.pruneExpired)
	if err != nil {
		return nil, err
	}

	rc.cron.Start()
	log.Infof("run history retention set to %d days, daily prune scheduled", retentionDays)
	return rc, nil
}

func (rc *RunsCleaner) Stop() {
	rc.cron.Stop()
}

func (rc *RunsCleaner) pruneExpired() {
	cutoff := time.Now().AddDate(0, 0, -rc.retentionDays)
	pruned, err := rc.history.RemoveOldRuns(context.Background(), cutoff)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("run history prune failed: %v", err)
		return
	}
	if pruned > 0 {
		log.Infof("pruned %v match runs older than %v", pruned, cutoff.Format(time.DateOnly))
	}
}
