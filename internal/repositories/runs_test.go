package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eduforge/intern-matcher/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func newTestRepository(t *testing.T) *Runs {

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = dbCtx.Close() })

	assert.NoError(t, dbCtx.Migrate())
	return NewRunsRepository(dbCtx.DB)
}

func testRun(createdAt time.Time) models.MatchRun {
	queries := []models.QuerySpec{{Query: "python internship Cairo", Provider: "serp"}}
	ranked := []models.ScoredOpportunity{{
		Title:   "SWE Intern",
		Company: "Acme",
		URL:     "https://jobs.example/swe-intern",
		Score:   80,
		Reasons: []string{"Skills align"},
	}}

	run := models.NewMatchRun(models.UserProfile{YearLevel: "junior"}, queries, nil, ranked)
	run.CreatedAt = createdAt
	return run
}

func Test_Runs_AddAndGetByIdRoundTrip(t *testing.T) {

	repo := newTestRepository(t)
	run := testRun(time.Now().UTC())

	assert.NoError(t, repo.Add(context.Background(), run))

	got, err := repo.GetByID(context.Background(), run.RunID.String())
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, run.RunID, got.RunID)
	assert.Equal(t, run.GeneratedQueries, got.GeneratedQueries)
	assert.Equal(t, run.RankedTop5, got.RankedTop5)
}

func Test_Runs_GetByIdReturnsNilWhenMissing(t *testing.T) {

	repo := newTestRepository(t)

	got, err := repo.GetByID(context.Background(), "no-such-run")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func Test_Runs_GetRecentReturnsNewestFirst(t *testing.T) {

	repo := newTestRepository(t)
	now := time.Now().UTC()

	oldest := testRun(now.Add(-2 * time.Hour))
	middle := testRun(now.Add(-time.Hour))
	newest := testRun(now)
	for _, run := range []models.MatchRun{oldest, middle, newest} {
		assert.NoError(t, repo.Add(context.Background(), run))
	}

	runs, err := repo.GetRecent(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, newest.RunID, runs[0].RunID)
	assert.Equal(t, middle.RunID, runs[1].RunID)
}

func Test_Runs_RemoveOldRunsDeletesOnlyExpired(t *testing.T) {

	repo := newTestRepository(t)
	now := time.Now().UTC()

	expired := testRun(now.Add(-48 * time.Hour))
	fresh := testRun(now)
	assert.NoError(t, repo.Add(context.Background(), expired))
	assert.NoError(t, repo.Add(context.Background(), fresh))

	removed, err := repo.RemoveOldRuns(context.Background(), now.Add(-24*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	got, err := repo.GetByID(context.Background(), expired.RunID.String())
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByID(context.Background(), fresh.RunID.String())
	assert.NoError(t, err)
	assert.NotNil(t, got)
}
