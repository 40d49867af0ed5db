package repository

import (
	"context"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

func testRating(jobID, reviewer, reviewee string, score int) *domain.Rating {
	return &domain.Rating{
		ID:         utils.NanoID(),
		JobID:      jobID,
		ReviewerID: reviewer,
		RevieweeID: reviewee,
		Score:      score,
		Comment:    "good work",
		CreatedAt:  time.Now(),
	}
}

func TestRatingOncePerReviewer(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	inserted, err := repos.Ratings.Create(ctx, testRating("job-1", "cust-1", "lab-1", 5))
	if err != nil || !inserted {
		t.Fatalf("first rating: inserted=%v err=%v", inserted, err)
	}

	// Same reviewer, same job: refused.
	inserted, err = repos.Ratings.Create(ctx, testRating("job-1", "cust-1", "lab-1", 1))
	if err != nil {
		t.Fatalf("duplicate rating errored: %v", err)
	}
	if inserted {
		t.Fatal("duplicate rating accepted")
	}

	// The other party rates independently.
	inserted, err = repos.Ratings.Create(ctx, testRating("job-1", "lab-1", "cust-1", 4))
	if err != nil || !inserted {
		t.Fatalf("counterpart rating: inserted=%v err=%v", inserted, err)
	}

	got, err := repos.Ratings.GetByJobAndReviewer(ctx, "job-1", "cust-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 5 {
		t.Errorf("score = %d, want the first submission to stand", got.Score)
	}
}

func TestRatingAverage(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	for i, score := range []int{5, 4, 3} {
		jobID := "job-" + string(rune('a'+i))
		if _, err := repos.Ratings.Create(ctx, testRating(jobID, "cust-1", "lab-1", score)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	avg, count, err := repos.Ratings.AverageForReviewee(ctx, "lab-1")
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if avg != 4 {
		t.Errorf("avg = %v, want 4", avg)
	}

	// No ratings yet: zero values, no error.
	avg, count, err = repos.Ratings.AverageForReviewee(ctx, "lab-2")
	if err != nil || avg != 0 || count != 0 {
		t.Errorf("empty average: avg=%v count=%d err=%v", avg, count, err)
	}
}
