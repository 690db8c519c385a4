package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
	"emaxplatform/internal/validation"
)

var errCourseNotFound = domain.NotFound("COURSE_NOT_FOUND", "Course not found")

var courseSearchFields = []string{"title", "description", "instructor"}

type CourseService struct {
	repo    CourseRepository
	metrics Recorder
}

func NewCourseService(repo CourseRepository, metrics Recorder) *CourseService {
	return &CourseService{repo: repo, metrics: recorderOrNop(metrics)}
}

type CourseListParams struct {
	ListParams
	Category string
}

// List returns a page of courses. The category filter is applied as sent,
// an unknown category simply matches nothing.
func (s *CourseService) List(ctx context.Context, p CourseListParams) ([]domain.Course, error) {
	f := query.Filter{}.
		Search(p.Search, courseSearchFields...).
		EqualIf("category", p.Category)
	courses, err := s.repo.List(ctx, f, p.page())
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListByCategory serves the category route, which validates the category.
func (s *CourseService) ListByCategory(ctx context.Context, rawCategory string, p ListParams) ([]domain.Course, error) {
	category, err := validation.ParseCategory(rawCategory)
	if err != nil {
		return nil, s.reject(err)
	}
	courses, err := s.repo.List(ctx, query.Filter{}.Equal("category", string(category)), p.page())
	if err != nil {
		return nil, fmt.Errorf("list courses by category: %w", err)
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, rawID string) (*domain.Course, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	return s.get(ctx, id)
}

func (s *CourseService) GetBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, s.reject(errCourseNotFound)
	}
	c, err := s.repo.GetBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errCourseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get course by slug: %w", err)
	}
	return c, nil
}

func (s *CourseService) Create(ctx context.Context, payload validation.Payload) (*domain.Course, error) {
	c, err := validation.Course(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	s.metrics.IncrementCreated(EntityCourse)
	return &c, nil
}

// Update applies the fields present in payload. The course must exist
// before the payload is looked at.
func (s *CourseService) Update(ctx context.Context, rawID string, payload validation.Payload) (*domain.Course, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes, err := validation.CourseChanges(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if changes.IsEmpty() {
		return existing, nil
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errCourseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return updated, nil
}

// Delete removes a course. Enrollments that reference it are left in place.
func (s *CourseService) Delete(ctx context.Context, rawID string) (*domain.Course, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	prior, err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errCourseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete course: %w", err)
	}
	s.metrics.IncrementDeleted(EntityCourse)
	return prior, nil
}

func (s *CourseService) get(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errCourseNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

func (s *CourseService) reject(err error) error {
	return rejected(s.metrics, EntityCourse, err)
}

func rejected(m Recorder, entity string, err error) error {
	if de, ok := domain.AsError(err); ok {
		m.IncrementRejected(entity, de.Code)
	}
	return err
}
