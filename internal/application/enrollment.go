package application

import (
	"context"
	"errors"
	"fmt"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
	"emaxplatform/internal/validation"
)

var enrollmentSearchFields = []string{"name", "email", "phone"}

// EnrollmentService handles general, course-agnostic inquiries.
type EnrollmentService struct {
	repo    EnrollmentRepository
	metrics Recorder
}

func NewEnrollmentService(repo EnrollmentRepository, metrics Recorder) *EnrollmentService {
	return &EnrollmentService{repo: repo, metrics: recorderOrNop(metrics)}
}

func (s *EnrollmentService) List(ctx context.Context, p ListParams) ([]domain.Enrollment, error) {
	out, err := s.repo.List(ctx, query.Filter{}.Search(p.Search, enrollmentSearchFields...), p.page())
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return out, nil
}

func (s *EnrollmentService) Get(ctx context.Context, rawID string) (*domain.Enrollment, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errEnrollmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

func (s *EnrollmentService) Create(ctx context.Context, payload validation.Payload) (*domain.Enrollment, error) {
	e, err := validation.Enrollment(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	s.metrics.IncrementCreated(EntityEnrollment)
	return &e, nil
}

func (s *EnrollmentService) Delete(ctx context.Context, rawID string) (*domain.Enrollment, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	prior, err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errEnrollmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete enrollment: %w", err)
	}
	s.metrics.IncrementDeleted(EntityEnrollment)
	return prior, nil
}

func (s *EnrollmentService) reject(err error) error {
	return rejected(s.metrics, EntityEnrollment, err)
}
