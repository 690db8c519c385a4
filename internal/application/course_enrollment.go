package application

import (
	"context"
	"errors"
	"fmt"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
	"emaxplatform/internal/validation"
)

var (
	errEnrollmentNotFound = domain.NotFound("ENROLLMENT_NOT_FOUND", "Enrollment not found")
	// The referenced course is client input, so its absence is a 400.
	errReferencedCourseMissing = domain.Invalid("COURSE_NOT_FOUND", "Course not found")
	errInvalidCourseIDFilter   = domain.Invalid("INVALID_COURSE_ID", "Valid courseId is required")
)

var courseEnrollmentSearchFields = []string{"studentName", "studentEmail"}

type CourseEnrollmentService struct {
	repo    CourseEnrollmentRepository
	courses CourseChecker
	metrics Recorder
}

func NewCourseEnrollmentService(repo CourseEnrollmentRepository, courses CourseChecker, metrics Recorder) *CourseEnrollmentService {
	return &CourseEnrollmentService{repo: repo, courses: courses, metrics: recorderOrNop(metrics)}
}

type CourseEnrollmentListParams struct {
	ListParams
	CourseID string
	Status   string
}

func (s *CourseEnrollmentService) List(ctx context.Context, p CourseEnrollmentListParams) ([]domain.CourseEnrollment, error) {
	f := query.Filter{}.Search(p.Search, courseEnrollmentSearchFields...)
	if p.CourseID != "" {
		courseID, ok := validation.ParseID(p.CourseID)
		if !ok {
			return nil, s.reject(errInvalidCourseIDFilter)
		}
		f = f.Equal("courseId", courseID)
	}
	f = f.EqualIf("enrollmentStatus", p.Status)

	out, err := s.repo.List(ctx, f, p.page())
	if err != nil {
		return nil, fmt.Errorf("list course enrollments: %w", err)
	}
	return out, nil
}

func (s *CourseEnrollmentService) Get(ctx context.Context, rawID string) (*domain.CourseEnrollment, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	return s.get(ctx, id)
}

// Create validates the payload fully before checking that the course exists,
// and stores nothing when either fails.
func (s *CourseEnrollmentService) Create(ctx context.Context, payload validation.Payload) (*domain.CourseEnrollment, error) {
	e, err := validation.CourseEnrollment(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.requireCourse(ctx, e.CourseID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("create course enrollment: %w", err)
	}
	s.metrics.IncrementCreated(EntityCourseEnrollment)
	return &e, nil
}

func (s *CourseEnrollmentService) Update(ctx context.Context, rawID string, payload validation.Payload) (*domain.CourseEnrollment, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes, err := validation.CourseEnrollmentChanges(payload)
	if err != nil {
		return nil, s.reject(err)
	}
	if changes.IsEmpty() {
		return existing, nil
	}
	if changes.CourseID != nil {
		if err := s.requireCourse(ctx, *changes.CourseID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errEnrollmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update course enrollment: %w", err)
	}
	return updated, nil
}

func (s *CourseEnrollmentService) Delete(ctx context.Context, rawID string) (*domain.CourseEnrollment, error) {
	id, err := validation.RequireID(rawID)
	if err != nil {
		return nil, s.reject(err)
	}
	prior, err := s.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errEnrollmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete course enrollment: %w", err)
	}
	s.metrics.IncrementDeleted(EntityCourseEnrollment)
	return prior, nil
}

func (s *CourseEnrollmentService) requireCourse(ctx context.Context, courseID int64) error {
	ok, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return fmt.Errorf("check course %d: %w", courseID, err)
	}
	if !ok {
		return s.reject(errReferencedCourseMissing)
	}
	return nil
}

func (s *CourseEnrollmentService) get(ctx context.Context, id int64) (*domain.CourseEnrollment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, s.reject(errEnrollmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get course enrollment: %w", err)
	}
	return e, nil
}

func (s *CourseEnrollmentService) reject(err error) error {
	return rejected(s.metrics, EntityCourseEnrollment, err)
}
