package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockRunHistory struct {
	cutoffs []time.Time
	removed int64
	err     error
}

func (m *mockRunHistory) RemoveOldRuns(_ context.Context, expirationTime time.Time) (int64, error) {
	m.cutoffs = append(m.cutoffs, expirationTime)
	return m.removed, m.err
}

func Test_RunsCleaner_RejectsNonPositiveRetention(t *testing.T) {

	_, err := NewRunsCleaner(&mockRunHistory{}, 0)
	assert.Error(t, err)

	_, err = NewRunsCleaner(&mockRunHistory{}, -1)
	assert.Error(t, err)
}

func Test_RunsCleaner_PrunesRunsOlderThanRetention(t *testing.T) {

	history := &mockRunHistory{removed: 3}
	cleaner, err := NewRunsCleaner(history, 30)
	assert.NoError(t, err)
	defer cleaner.Stop()

	cleaner.pruneExpired()

	assert.Len(t, history.cutoffs, 1)
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, history.cutoffs[0], time.Minute)
}

func Test_RunsCleaner_HistoryFailureIsAbsorbed(t *testing.T) {

	history := &mockRunHistory{err: assert.AnError}
	cleaner, err := NewRunsCleaner(history, 7)
	assert.NoError(t, err)
	defer cleaner.Stop()

	assert.NotPanics(t, cleaner.pruneExpired)
}
