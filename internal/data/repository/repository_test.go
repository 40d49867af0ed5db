package repository

import (
	"context"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"

	_ "github.com/quickhirelabor/quickhire/internal/data/sqlite"
)

// newTestRepos spins up an in-memory sqlite database with the full
// schema applied.
func newTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := &config.Data{
		Database: &config.Database{
			Master: &config.DBNode{
				Driver: "sqlite3",
				Source: ":memory:",
			},
		},
	}
	d, err := data.New(cfg, logger.StdLogger())
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := data.Migrate(context.Background(), d); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(d)
}

func testJob(customerID string, status domain.JobStatus) *domain.Job {
	now := time.Now()
	return &domain.Job{
		ID:          utils.NanoID(),
		Slug:        "fix-the-fence-" + utils.NanoString(6),
		Title:       "Fix the fence",
		Description: "Two broken panels in the back yard.",
		Location:    "Pune",
		BudgetCents: 250000,
		Status:      status,
		CustomerID:  customerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testEvent(job *domain.Job, status domain.JobStatus, actor domain.Actor) *domain.JobStatusEvent {
	return &domain.JobStatusEvent{
		ID:        utils.NanoID(),
		JobID:     job.ID,
		Status:    status,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		CreatedAt: time.Now(),
	}
}
