package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
	"emaxplatform/internal/validation"
)

type fakeEnrollments struct {
	items      map[int64]domain.Enrollment
	lastFilter query.Filter
}

func (f *fakeEnrollments) GetByID(_ context.Context, id int64) (*domain.Enrollment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEnrollments) List(_ context.Context, fl query.Filter, _ query.Page) ([]domain.Enrollment, error) {
	f.lastFilter = fl
	return []domain.Enrollment{}, nil
}

func (f *fakeEnrollments) Create(_ context.Context, e *domain.Enrollment) error {
	e.ID = int64(len(f.items) + 1)
	f.items[e.ID] = *e
	return nil
}

func (f *fakeEnrollments) Delete(_ context.Context, id int64) (*domain.Enrollment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.items, id)
	return &e, nil
}

type fakeApplications struct {
	items      map[int64]domain.TeamApplication
	lastFilter query.Filter
	failWith   error
}

func (f *fakeApplications) GetByID(_ context.Context, id int64) (*domain.TeamApplication, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (f *fakeApplications) List(_ context.Context, fl query.Filter, _ query.Page) ([]domain.TeamApplication, error) {
	f.lastFilter = fl
	if f.failWith != nil {
		return nil, f.failWith
	}
	return []domain.TeamApplication{}, nil
}

func (f *fakeApplications) Create(_ context.Context, a *domain.TeamApplication) error {
	a.ID = int64(len(f.items) + 1)
	f.items[a.ID] = *a
	return nil
}

func (f *fakeApplications) Delete(_ context.Context, id int64) (*domain.TeamApplication, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.items, id)
	return &a, nil
}

func TestEnrollmentService(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEnrollments{items: map[int64]domain.Enrollment{}}
	svc := NewEnrollmentService(repo, nil)

	_, err := svc.Create(ctx, validation.Payload{"name": "Arjun", "email": "a@b.c"})
	assertDomainError(t, err, domain.KindInvalid, "MISSING_PHONE")
	assert.Empty(t, repo.items)

	e, err := svc.Create(ctx, validation.Payload{"name": "Arjun", "email": " A@B.C ", "phone": "1", "courseInterested": "SAP"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", e.Email)
	require.NotNil(t, e.CourseInterested)

	_, err = svc.List(ctx, ListParams{Search: "arjun"})
	require.NoError(t, err)
	assert.Equal(t, []query.Clause{query.AnyContains{Fields: []string{"name", "email", "phone"}, Term: "arjun"}}, repo.lastFilter.Clauses)

	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Arjun", got.Name)

	_, err = svc.Delete(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "1")
	assertDomainError(t, err, domain.KindNotFound, "ENROLLMENT_NOT_FOUND")
}

func TestTeamApplicationService(t *testing.T) {
	ctx := context.Background()
	repo := &fakeApplications{items: map[int64]domain.TeamApplication{}}
	svc := NewTeamApplicationService(repo, nil)

	_, err := svc.Create(ctx, validation.Payload{"name": "Arjun Desai"})
	assertDomainError(t, err, domain.KindInvalid, "MISSING_EMAIL")

	a, err := svc.Create(ctx, validation.Payload{
		"name": "Arjun Desai", "email": "arjun@design.io", "phone": "1",
		"positionApplied": "UI/UX Design Instructor", "specialization": "Figma",
		"yearsOfExperience": "6", "coverLetter": "Hello", "portfolioUrl": " ",
	})
	require.NoError(t, err)
	assert.Nil(t, a.PortfolioURL)

	_, err = svc.Get(ctx, "2")
	assertDomainError(t, err, domain.KindNotFound, "NOT_FOUND")

	_, err = svc.List(ctx, ListParams{Search: "figma"})
	require.NoError(t, err)
	require.Len(t, repo.lastFilter.Clauses, 1)

	repo.failWith = errStoreDown
	_, err = svc.List(ctx, ListParams{})
	assert.ErrorIs(t, err, errStoreDown)

	prior, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Desai", prior.Name)
}
