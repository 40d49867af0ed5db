package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/paging"
)

func TestJobCreateAndGet(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	job := testJob("cust-1", domain.StatusPendingApproval)
	if err := repos.Jobs.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repos.Jobs.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != job.Title || got.Status != domain.StatusPendingApproval {
		t.Errorf("got %+v", got)
	}
	if got.LaborerID != nil {
		t.Errorf("laborer_id = %v, want nil", *got.LaborerID)
	}
	if !got.CreatedAt.Equal(job.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, job.CreatedAt)
	}

	bySlug, err := repos.Jobs.GetBySlug(ctx, job.Slug)
	if err != nil || bySlug.ID != job.ID {
		t.Errorf("get by slug: %v, %v", bySlug, err)
	}

	if _, err := repos.Jobs.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
}

func TestConditionalUpdateStatus(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()
	laborer := domain.Actor{ID: "lab-1", Role: domain.RoleLaborer}

	job := testJob("cust-1", domain.StatusOpen)
	if err := repos.Jobs.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	lid := laborer.ID
	applied, err := repos.Jobs.ConditionalUpdateStatus(ctx, job.ID,
		domain.StatusOpen, domain.StatusAssigned, &lid,
		testEvent(job, domain.StatusAssigned, laborer))
	if err != nil {
		t.Fatalf("conditional update: %v", err)
	}
	if !applied {
		t.Fatal("first guarded update not applied")
	}

	got, err := repos.Jobs.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusAssigned {
		t.Errorf("status = %s, want assigned", got.Status)
	}
	if got.LaborerID == nil || *got.LaborerID != laborer.ID {
		t.Errorf("laborer_id = %v, want %s", got.LaborerID, laborer.ID)
	}

	// Stale guard: expected status no longer matches.
	other := "lab-2"
	applied, err = repos.Jobs.ConditionalUpdateStatus(ctx, job.ID,
		domain.StatusOpen, domain.StatusAssigned, &other,
		testEvent(job, domain.StatusAssigned, domain.Actor{ID: other, Role: domain.RoleLaborer}))
	if err != nil {
		t.Fatalf("stale guarded update errored: %v", err)
	}
	if applied {
		t.Fatal("stale guarded update applied")
	}

	got, _ = repos.Jobs.Get(ctx, job.ID)
	if *got.LaborerID != laborer.ID {
		t.Errorf("laborer_id overwritten to %s", *got.LaborerID)
	}

	// A missed guard must not leave an audit event behind.
	events, err := repos.Jobs.StatusEvents(ctx, job.ID)
	if err != nil {
		t.Fatalf("status events: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("event count = %d, want 1", len(events))
	}
	if events[0].ActorID != laborer.ID || events[0].Status != domain.StatusAssigned {
		t.Errorf("event = %+v", events[0])
	}

	// Unknown job reports a missed guard, not an error.
	applied, err = repos.Jobs.ConditionalUpdateStatus(ctx, "missing",
		domain.StatusOpen, domain.StatusAssigned, nil,
		testEvent(job, domain.StatusAssigned, laborer))
	if err != nil || applied {
		t.Errorf("missing job: applied=%v err=%v", applied, err)
	}
}

func TestJobListFilter(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	open1 := testJob("cust-1", domain.StatusOpen)
	open2 := testJob("cust-2", domain.StatusOpen)
	pending := testJob("cust-1", domain.StatusPendingApproval)
	for _, j := range []*domain.Job{open1, open2, pending} {
		if err := repos.Jobs.Create(ctx, j); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	jobs, total, _, err := repos.Jobs.List(ctx, JobFilter{Status: domain.StatusOpen}, "", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(jobs) != 2 {
		t.Errorf("open jobs: total=%d len=%d, want 2", total, len(jobs))
	}

	jobs, total, _, err = repos.Jobs.List(ctx, JobFilter{CustomerID: "cust-1"}, "", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Errorf("cust-1 jobs: total=%d, want 2", total)
	}
	for _, j := range jobs {
		if j.CustomerID != "cust-1" {
			t.Errorf("leaked job of %s", j.CustomerID)
		}
	}
}

// walkJobPages pages through cust-1's jobs with the given page size and
// returns every job ID seen, failing on duplicates.
func walkJobPages(t *testing.T, repos *Repositories, pageSize int) []string {
	t.Helper()
	ctx := context.Background()

	var ids []string
	seen := map[string]bool{}
	params := paging.Params{Limit: pageSize}
	for {
		result, err := paging.Paginate(params, func(cursor string, limit int) ([]*domain.Job, int, string, error) {
			return repos.Jobs.List(ctx, JobFilter{CustomerID: "cust-1"}, cursor, limit)
		})
		if err != nil {
			t.Fatalf("paginate: %v", err)
		}
		for _, job := range result.Items {
			if seen[job.ID] {
				t.Errorf("job %s returned on two pages", job.ID)
			}
			seen[job.ID] = true
			ids = append(ids, job.ID)
		}
		if !result.HasNextPage {
			return ids
		}
		params.Cursor = result.NextCursor
	}
}

func TestJobListPagesWithoutSkipping(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		job := testJob("cust-1", domain.StatusOpen)
		job.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		job.UpdatedAt = job.CreatedAt
		if err := repos.Jobs.Create(ctx, job); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	ids := walkJobPages(t, repos, 2)
	if len(ids) != 5 {
		t.Errorf("saw %d jobs across pages, want 5", len(ids))
	}
}

func TestJobListPagesThroughTiedTimestamps(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	at := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		job := testJob("cust-1", domain.StatusOpen)
		job.CreatedAt = at
		job.UpdatedAt = at
		if err := repos.Jobs.Create(ctx, job); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	ids := walkJobPages(t, repos, 2)
	if len(ids) != 3 {
		t.Errorf("saw %d jobs across pages, want 3", len(ids))
	}
}
