package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/paging"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

func TestMessageListPagesWholeThread(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	job := testJob("cust-1", domain.StatusAssigned)
	if err := repos.Jobs.Create(ctx, job); err != nil {
		t.Fatalf("create job: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		msg := &domain.Message{
			ID:        utils.NanoID(),
			JobID:     job.ID,
			SenderID:  "cust-1",
			Body:      fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repos.Messages.Create(ctx, msg); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	seen := map[string]bool{}
	params := paging.Params{Limit: 2}
	for {
		result, err := paging.Paginate(params, func(cursor string, limit int) ([]*domain.Message, int, string, error) {
			return repos.Messages.ListByJob(ctx, job.ID, cursor, limit)
		})
		if err != nil {
			t.Fatalf("paginate: %v", err)
		}
		if result.Total != 5 {
			t.Errorf("total = %d, want 5", result.Total)
		}
		for _, msg := range result.Items {
			if seen[msg.ID] {
				t.Errorf("message %s returned on two pages", msg.ID)
			}
			seen[msg.ID] = true
		}
		if !result.HasNextPage {
			break
		}
		params.Cursor = result.NextCursor
	}
	if len(seen) != 5 {
		t.Errorf("saw %d messages across pages, want 5", len(seen))
	}
}
