package service

import (
	"context"
	"errors"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// RatingService records post-completion feedback. Each party rates the
// other at most once per job.
type RatingService struct {
	ratings repository.RatingRepository
	jobs    repository.JobRepository
	logger  *logger.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(ratings repository.RatingRepository, jobs repository.JobRepository, log *logger.Logger) *RatingService {
	return &RatingService{
		ratings: ratings,
		jobs:    jobs,
		logger:  log,
	}
}

// RateJobRequest represents feedback on a completed job.
type RateJobRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// Rate records the actor's feedback on the job's other party. The job
// must be completed and the actor one of its parties.
func (s *RatingService) Rate(ctx context.Context, actor domain.Actor, jobID string, req *RateJobRequest) (*domain.Rating, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.Status != domain.StatusCompleted {
		return nil, ErrJobNotCompleted
	}

	var reviewee string
	switch {
	case job.IsOwner(actor.ID):
		if !job.Assigned() {
			return nil, ErrJobNotAssigned
		}
		reviewee = *job.LaborerID
	case job.IsAssignedLaborer(actor.ID):
		reviewee = job.CustomerID
	default:
		return nil, ErrForbidden
	}

	rating := &domain.Rating{
		ID:         utils.NanoID(),
		JobID:      jobID,
		ReviewerID: actor.ID,
		RevieweeID: reviewee,
		Score:      req.Score,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}
	inserted, err := s.ratings.Create(ctx, rating)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrDuplicateRating
	}
	s.logger.Info(ctx, "rating recorded",
		"job_id", jobID, "reviewer_id", actor.ID, "score", req.Score)
	return rating, nil
}

// GetByJob returns the actor's own rating on the job, if any.
func (s *RatingService) GetByJob(ctx context.Context, actor domain.Actor, jobID string) (*domain.Rating, error) {
	rating, err := s.ratings.GetByJobAndReviewer(ctx, jobID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rating, nil
}

// ListForUser returns all feedback received by the given user.
func (s *RatingService) ListForUser(ctx context.Context, userID string) ([]*domain.Rating, error) {
	ratings, err := s.ratings.ListByReviewee(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []*domain.Rating{}
	}
	return ratings, nil
}
