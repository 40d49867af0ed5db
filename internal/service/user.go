package service

import (
	"context"
	"errors"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

// UserService covers account administration and public profiles.
type UserService struct {
	users   repository.UserRepository
	ratings repository.RatingRepository
	skills  repository.SkillRepository
	logger  *logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, ratings repository.RatingRepository, skills repository.SkillRepository, log *logger.Logger) *UserService {
	return &UserService{
		users:   users,
		ratings: ratings,
		skills:  skills,
		logger:  log,
	}
}

// LaborerProfile is the public view of a laborer.
type LaborerProfile struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Skills  []*domain.Skill `json:"skills"`
	Rating  float64         `json:"rating"`
	Reviews int             `json:"reviews"`
}

// List returns all accounts with the given role, or all accounts when
// the role is empty. Admin only.
func (s *UserService) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.users.List(ctx, role)
}

// Get returns one account. Admin only.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetActive suspends or reinstates an account. Admin only.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.logger.Info(ctx, "user active flag changed", "user_id", id, "active", active)
	return nil
}

// Laborer returns the public profile of an active laborer, including
// skills and aggregate rating.
func (s *UserService) Laborer(ctx context.Context, id string) (*LaborerProfile, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != domain.RoleLaborer || !user.Active {
		return nil, ErrNotFound
	}

	skills, err := s.skills.ListByLaborer(ctx, id)
	if err != nil {
		return nil, err
	}
	avg, count, err := s.ratings.AverageForReviewee(ctx, id)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []*domain.Skill{}
	}

	return &LaborerProfile{
		ID:      user.ID,
		Name:    user.Name,
		Skills:  skills,
		Rating:  avg,
		Reviews: count,
	}, nil
}
