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

// CatalogService manages the service categories and laborer skills.
type CatalogService struct {
	services repository.ServiceRepository
	skills   repository.SkillRepository
	logger   *logger.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(services repository.ServiceRepository, skills repository.SkillRepository, log *logger.Logger) *CatalogService {
	return &CatalogService{
		services: services,
		skills:   skills,
		logger:   log,
	}
}

// UpsertServiceRequest creates or updates a service category.
type UpsertServiceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=1000"`
	RateCents   int64  `json:"rate_cents" binding:"omitempty,gt=0"`
}

// ReplaceSkillsRequest replaces a laborer's skill set.
type ReplaceSkillsRequest struct {
	Skills []string `json:"skills" binding:"required,max=50,dive,min=1,max=100"`
}

// ListServices returns every service category.
func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return services, nil
}

// CreateService adds a service category. Admin only.
func (s *CatalogService) CreateService(ctx context.Context, req *UpsertServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		ID:          utils.NanoID(),
		Name:        req.Name,
		Description: req.Description,
		RateCents:   req.RateCents,
		CreatedAt:   time.Now(),
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService edits a service category. Admin only.
func (s *CatalogService) UpdateService(ctx context.Context, id string, req *UpsertServiceRequest) (*domain.Service, error) {
	svc, err := s.services.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.RateCents = req.RateCents
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service category. Admin only. Jobs keep their
// dangling service reference.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ReplaceSkills swaps the acting laborer's skill set for the given one.
func (s *CatalogService) ReplaceSkills(ctx context.Context, actor domain.Actor, req *ReplaceSkillsRequest) ([]*domain.Skill, error) {
	if actor.Role != domain.RoleLaborer {
		return nil, ErrForbidden
	}

	now := time.Now()
	skills := make([]*domain.Skill, 0, len(req.Skills))
	seen := make(map[string]bool, len(req.Skills))
	for _, name := range req.Skills {
		if seen[name] {
			continue
		}
		seen[name] = true
		skills = append(skills, &domain.Skill{
			ID:        utils.NanoID(),
			LaborerID: actor.ID,
			Name:      name,
			CreatedAt: now,
		})
	}
	if err := s.skills.Replace(ctx, actor.ID, skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// ListSkills returns the given laborer's skills.
func (s *CatalogService) ListSkills(ctx context.Context, laborerID string) ([]*domain.Skill, error) {
	skills, err := s.skills.ListByLaborer(ctx, laborerID)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []*domain.Skill{}
	}
	return skills, nil
}
