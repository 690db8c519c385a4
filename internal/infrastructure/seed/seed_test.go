package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/infrastructure/repository"
	"emaxplatform/internal/testutil"
	"emaxplatform/internal/validation"
)

func TestSeeder_RunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t, repository.Models()...)
	courses := repository.NewCourseRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	applications := repository.NewTeamApplicationRepository(db)

	s := NewSeeder(courses, enrollments, applications, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, s.Run(ctx))
	require.NoError(t, s.Run(ctx))

	n, err := courses.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = enrollments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = applications.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	sap, err := courses.GetBySlug(ctx, "sap-fico-certification-training")
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySAP, sap.Category)
	assert.Equal(t, domain.LevelAdvanced, sap.Level)
	assert.Len(t, sap.Topics, 6)
}

func TestSeedCourses_PassValidation(t *testing.T) {
	raw, err := load[validation.Payload]("courses.json")
	require.NoError(t, err)
	require.Len(t, raw, 6)

	for _, p := range raw {
		_, err := validation.Course(p)
		assert.NoError(t, err, "seed course %v", p["slug"])
	}
}

type failingCourses struct{}

func (failingCourses) Count(context.Context) (int64, error) { return 0, assert.AnError }
func (failingCourses) Create(context.Context, *domain.Course) error {
	return nil
}

func TestSeeder_CountFailure(t *testing.T) {
	s := NewSeeder(failingCourses{}, nil, nil, nil)
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
