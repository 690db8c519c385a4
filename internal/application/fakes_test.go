package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

var errStoreDown = errors.New("connection refused")

// fakeCourses keeps courses in memory. It ignores filters and pages but
// records the last ones it was given.
type fakeCourses struct {
	mu       sync.Mutex
	nextID   int64
	items    map[int64]domain.Course
	failWith error

	lastFilter query.Filter
	lastPage   query.Page
	updates    int
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{items: map[int64]domain.Course{}}
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCourses) GetBySlug(_ context.Context, slug string) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCourses) Exists(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeCourses) List(_ context.Context, fl query.Filter, p query.Page) ([]domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter, f.lastPage = fl, p
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []domain.Course{}
	for _, c := range f.items {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourses) Create(_ context.Context, c *domain.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now().UTC()
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCourses) Update(_ context.Context, id int64, u domain.CourseUpdate) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.Title != nil {
		c.Title = *u.Title
	}
	f.items[id] = c
	return &c, nil
}

func (f *fakeCourses) Delete(_ context.Context, id int64) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.items, id)
	return &c, nil
}

type fakeCourseEnrollments struct {
	mu         sync.Mutex
	nextID     int64
	items      map[int64]domain.CourseEnrollment
	lastFilter query.Filter
}

func newFakeCourseEnrollments() *fakeCourseEnrollments {
	return &fakeCourseEnrollments{items: map[int64]domain.CourseEnrollment{}}
}

func (f *fakeCourseEnrollments) GetByID(_ context.Context, id int64) (*domain.CourseEnrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (f *fakeCourseEnrollments) List(_ context.Context, fl query.Filter, _ query.Page) ([]domain.CourseEnrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = fl
	return []domain.CourseEnrollment{}, nil
}

func (f *fakeCourseEnrollments) Create(_ context.Context, e *domain.CourseEnrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now().UTC()
	f.items[e.ID] = *e
	return nil
}

func (f *fakeCourseEnrollments) Update(_ context.Context, id int64, u domain.CourseEnrollmentUpdate) (*domain.CourseEnrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.CourseID != nil {
		e.CourseID = *u.CourseID
	}
	if u.EnrollmentStatus != nil {
		e.EnrollmentStatus = *u.EnrollmentStatus
	}
	if u.MessageSet {
		e.Message = u.Message
	}
	f.items[id] = e
	return &e, nil
}

func (f *fakeCourseEnrollments) Delete(_ context.Context, id int64) (*domain.CourseEnrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.items, id)
	return &e, nil
}

type countingRecorder struct {
	created  map[string]int
	deleted  map[string]int
	rejected map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{created: map[string]int{}, deleted: map[string]int{}, rejected: map[string]int{}}
}

func (r *countingRecorder) IncrementCreated(entity string) { r.created[entity]++ }
func (r *countingRecorder) IncrementDeleted(entity string) { r.deleted[entity]++ }
func (r *countingRecorder) IncrementRejected(_, code string) {
	r.rejected[code]++
}
