package application

import (
	"context"
	"errors"
	"fmt"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
	"emaxplatform/internal/validation"
)

var errApplicationNotFound = domain.NotFound("NOT_FOUND", "Application not found")

var teamApplicationSearchFields = []string{"name", "email", "positionApplied", "specialization"}

type TeamApplicationService struct {
	repo    TeamApplicationRepository
	metrics Recorder
}

func NewTeamApplicationService(repo TeamApplicationRepository, metrics Recorder) *TeamApplicationService {
	return &TeamApplicationService{repo: repo, metrics: recorderOrNop(metrics)}
}

func (s *TeamApplicationService) List(ctx context.Context, p ListParams) ([]domain.TeamApplication, error) {
	out, err := s.repo.List(ctx, query.Filter{}.Search(p.Search, teamApplicationSearchFields...), p.page())
	if err != nil {
		return nil, fmt.Errorf("list team applications: %w", err)
	}
	return out, nil
}

func (s *TeamApplicationService) Get(ctx context.Context, rawID string) (*domain.TeamApplication, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errApplicationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get team application: %w", err)
	}
	return a, nil
}

func (s *TeamApplicationService) Create(ctx context.Context, payload validation.Payload) (*domain.TeamApplication, error) {
	a, err := validation.TeamApplication(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("create team application: %w", err)
	}
	s.metrics.IncrementCreated(EntityTeamApplication)
	return &a, nil
}

func (s *TeamApplicationService) Delete(ctx context.Context, rawID string) (*domain.TeamApplication, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	prior, err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errApplicationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete team application: %w", err)
	}
	s.metrics.IncrementDeleted(EntityTeamApplication)
	return prior, nil
}

func (s *TeamApplicationService) reject(err error) error {
	return rejected(s.metrics, EntityTeamApplication, err)
}
