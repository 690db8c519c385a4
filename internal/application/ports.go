package application

import (
	"context"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Course, error)
	Create(ctx context.Context, c *domain.Course) error
	Update(ctx context.Context, id int64, u domain.CourseUpdate) (*domain.Course, error)
	Delete(ctx context.Context, id int64) (*domain.Course, error)
}

// CourseChecker is the referential check used by course enrollments.
type CourseChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type CourseEnrollmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CourseEnrollment, error)
	List(ctx context.Context, f query.Filter, p query.Page) ([]domain.CourseEnrollment, error)
	Create(ctx context.Context, e *domain.CourseEnrollment) error
	Update(ctx context.Context, id int64, u domain.CourseEnrollmentUpdate) (*domain.CourseEnrollment, error)
	Delete(ctx context.Context, id int64) (*domain.CourseEnrollment, error)
}

type EnrollmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Enrollment, error)
	List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Enrollment, error)
	Create(ctx context.Context, e *domain.Enrollment) error
	Delete(ctx context.Context, id int64) (*domain.Enrollment, error)
}

type TeamApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TeamApplication, error)
	List(ctx context.Context, f query.Filter, p query.Page) ([]domain.TeamApplication, error)
	Create(ctx context.Context, a *domain.TeamApplication) error
	Delete(ctx context.Context, id int64) (*domain.TeamApplication, error)
}

// Recorder receives business counters. *metrics.Metrics implements it.
type Recorder interface {
	IncrementCreated(entity string)
	IncrementDeleted(entity string)
	IncrementRejected(entity, code string)
}

type nopRecorder struct{}

func (nopRecorder) IncrementCreated(string)          {}
func (nopRecorder) IncrementDeleted(string)          {}
func (nopRecorder) IncrementRejected(string, string) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// ListParams are the raw query-string values of a listing request.
type ListParams struct {
	Search string
	Limit  string
	Offset string
}

func (p ListParams) page() query.Page {
	return query.ParsePage(p.Limit, p.Offset)
}

const (
	EntityCourse           = "course"
	EntityCourseEnrollment = "course_enrollment"
	EntityEnrollment       = "enrollment"
	EntityTeamApplication  = "team_application"
)
