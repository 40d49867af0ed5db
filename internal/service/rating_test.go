package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

func newRatingFixture() (*RatingService, *fakeJobRepo) {
	jobs := newFakeJobRepo()
	return NewRatingService(newFakeRatingRepo(), jobs, logger.StdLogger()), jobs
}

func TestRateCompletedJob(t *testing.T) {
	svc, jobs := newRatingFixture()
	ctx := context.Background()

	job := seededJob(jobs, domain.StatusCompleted, testLaborer.ID)

	// Customer rates the laborer.
	rating, err := svc.Rate(ctx, testCustomer, job.ID, &RateJobRequest{Score: 5, Comment: "great"})
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rating.RevieweeID != testLaborer.ID {
		t.Errorf("reviewee = %s, want %s", rating.RevieweeID, testLaborer.ID)
	}

	// Laborer rates the customer independently.
	rating, err = svc.Rate(ctx, testLaborer, job.ID, &RateJobRequest{Score: 4})
	if err != nil {
		t.Fatalf("laborer rate: %v", err)
	}
	if rating.RevieweeID != testCustomer.ID {
		t.Errorf("reviewee = %s, want %s", rating.RevieweeID, testCustomer.ID)
	}

	// Each party rates once.
	if _, err := svc.Rate(ctx, testCustomer, job.ID, &RateJobRequest{Score: 1}); !errors.Is(err, ErrDuplicateRating) {
		t.Errorf("duplicate: got %v, want ErrDuplicateRating", err)
	}
}

func TestRateGuards(t *testing.T) {
	svc, jobs := newRatingFixture()
	ctx := context.Background()

	inProgress := seededJob(jobs, domain.StatusInProgress, testLaborer.ID)
	completed := seededJob(jobs, domain.StatusCompleted, testLaborer.ID)

	if _, err := svc.Rate(ctx, testCustomer, inProgress.ID, &RateJobRequest{Score: 5}); !errors.Is(err, ErrJobNotCompleted) {
		t.Errorf("rate in progress: got %v, want ErrJobNotCompleted", err)
	}

	// Outsiders cannot rate.
	if _, err := svc.Rate(ctx, testLaborer2, completed.ID, &RateJobRequest{Score: 5}); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider rates: got %v, want ErrForbidden", err)
	}
	if _, err := svc.Rate(ctx, testAdmin, completed.ID, &RateJobRequest{Score: 5}); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin rates: got %v, want ErrForbidden", err)
	}

	if _, err := svc.Rate(ctx, testCustomer, "missing", &RateJobRequest{Score: 5}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing job: got %v, want ErrNotFound", err)
	}

	// A completed row without a laborer cannot happen through the
	// engine, but a rating attempt on one must not panic.
	orphan := seededJob(jobs, domain.StatusCompleted, "")
	if _, err := svc.Rate(ctx, testCustomer, orphan.ID, &RateJobRequest{Score: 5}); !errors.Is(err, ErrJobNotAssigned) {
		t.Errorf("rate unassigned: got %v, want ErrJobNotAssigned", err)
	}
}
