package repository

import (
	"context"
	"database/sql"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// RatingRepository stores post-completion feedback.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (bool, error)
	GetByJobAndReviewer(ctx context.Context, jobID, reviewerID string) (*domain.Rating, error)
	ListByReviewee(ctx context.Context, revieweeID string) ([]*domain.Rating, error)
	AverageForReviewee(ctx context.Context, revieweeID string) (float64, int, error)
}

type ratingRepository struct {
	base
}

const ratingColumns = `id, job_id, reviewer_id, reviewee_id, score, comment, created_at`

// Create inserts the rating unless the reviewer already rated the job.
// It reports false when the rating already existed.
func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) (bool, error) {
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO ratings (`+ratingColumns+`)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM ratings WHERE job_id = ? AND reviewer_id = ?
		)
	`),
		rating.ID,
		rating.JobID,
		rating.ReviewerID,
		rating.RevieweeID,
		rating.Score,
		rating.Comment,
		formatTime(rating.CreatedAt),
		rating.JobID,
		rating.ReviewerID,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *ratingRepository) GetByJobAndReviewer(ctx context.Context, jobID, reviewerID string) (*domain.Rating, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+ratingColumns+` FROM ratings WHERE job_id = ? AND reviewer_id = ?
	`), jobID, reviewerID)
	return scanRating(row)
}

func (r *ratingRepository) ListByReviewee(ctx context.Context, revieweeID string) ([]*domain.Rating, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT `+ratingColumns+` FROM ratings WHERE reviewee_id = ? ORDER BY created_at DESC
	`), revieweeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*domain.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ratingRepository) AverageForReviewee(ctx context.Context, revieweeID string) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	if err := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT AVG(score), COUNT(*) FROM ratings WHERE reviewee_id = ?
	`), revieweeID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}

func scanRating(sc scanner) (*domain.Rating, error) {
	var comment sql.NullString
	var createdAt string

	rating := &domain.Rating{}
	if err := sc.Scan(
		&rating.ID, &rating.JobID, &rating.ReviewerID, &rating.RevieweeID,
		&rating.Score, &comment, &createdAt,
	); err != nil {
		return nil, mapNoRows(err)
	}

	rating.Comment = comment.String
	var err error
	if rating.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return rating, nil
}
