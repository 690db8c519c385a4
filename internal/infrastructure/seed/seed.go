package seed

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"emaxplatform/internal/domain"
)

//go:embed data/*.json
var data embed.FS

type CourseStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *domain.Course) error
}

type EnrollmentStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, e *domain.Enrollment) error
}

type TeamApplicationStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, a *domain.TeamApplication) error
}

// Seeder fills empty tables with the catalogue and sample submissions.
type Seeder struct {
	courses      CourseStore
	enrollments  EnrollmentStore
	applications TeamApplicationStore
	log          *slog.Logger
}

func NewSeeder(courses CourseStore, enrollments EnrollmentStore, applications TeamApplicationStore, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{courses: courses, enrollments: enrollments, applications: applications, log: log}
}

// Run seeds each table that is currently empty. Tables with rows are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	if err := seedTable(ctx, s, "courses.json", s.courses.Count, s.courses.Create); err != nil {
		return err
	}
	if err := seedTable(ctx, s, "enrollments.json", s.enrollments.Count, s.enrollments.Create); err != nil {
		return err
	}
	return seedTable(ctx, s, "team_applications.json", s.applications.Count, s.applications.Create)
}

func seedTable[T any](
	ctx context.Context,
	s *Seeder,
	file string,
	count func(context.Context) (int64, error),
	create func(context.Context, *T) error,
) error {
	n, err := count(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: count: %w", file, err)
	}
	if n > 0 {
		return nil
	}

	records, err := load[T](file)
	if err != nil {
		return err
	}
	for i := range records {
		if err := create(ctx, &records[i]); err != nil {
			return fmt.Errorf("seed %s: record %d: %w", file, i, err)
		}
	}
	s.log.InfoContext(ctx, "seeded table", "file", file, "records", len(records))
	return nil
}

func load[T any](file string) ([]T, error) {
	raw, err := data.ReadFile("data/" + file)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", file, err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("seed %s: decode: %w", file, err)
	}
	return records, nil
}
