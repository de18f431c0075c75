package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Runs struct {
	db *gorm.DB
}

func NewRunsRepository(db *gorm.DB) *Runs {
	return &Runs{db: db}
}

func (repo *Runs) Add(ctx context.Context, run models.MatchRun) error {

	payload, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(err, "failed to marshal match run")
	}

	return repo.db.WithContext(ctx).Create(&models.MatchRunRecord{
		RunID:     run.RunID.String(),
		Payload:   payload,
		CreatedAt: run.CreatedAt,
	}).Error
}

// GetByID returns the stored run, or nil when no run with that ID exists.
func (repo *Runs) GetByID(ctx context.Context, runID string) (*models.MatchRun, error) {

	var record models.MatchRunRecord
	err := repo.db.WithContext(ctx).First(&record, "run_id = ?", runID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var run models.MatchRun
	if err = json.Unmarshal(record.Payload, &run); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal match run")
	}
	return &run, nil
}

func (repo *Runs) GetRecent(ctx context.Context, limit int) ([]models.MatchRun, error) {

	var records []models.MatchRunRecord
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}

	runs := make([]models.MatchRun, 0, len(records))
	for _, record := range records {
		var run models.MatchRun
		if err := json.Unmarshal(record.Payload, &run); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal match run")
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (repo *Runs) RemoveOldRuns(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.MatchRunRecord{}, "created_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
