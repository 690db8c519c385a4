package repository

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var row courseGorm
	if err := first(ctx, r.db, &row, id); err != nil {
		return nil, err
	}
	return toDomainCourse(&row), nil
}

func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	var row courseGorm
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainCourse(&row), nil
}

func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&courseGorm{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&courseGorm{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Course, error) {
	q, err := applyFilter(r.db.WithContext(ctx).Model(&courseGorm{}), f, courseColumns)
	if err != nil {
		return nil, err
	}
	var rows []courseGorm
	if err := applyPage(q, p).Find(&rows).Error; err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, *toDomainCourse(&rows[i]))
	}
	return courses, nil
}

// Create stores c and fills in its server-assigned id and createdAt.
func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	row := toGormCourse(c)
	row.ID = 0
	row.CreatedAt = now()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*c = *toDomainCourse(row)
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, id int64, u domain.CourseUpdate) (*domain.Course, error) {
	if changes := courseChanges(u); len(changes) > 0 {
		if err := updateByID(ctx, r.db, &courseGorm{}, id, changes); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the course and returns what was stored.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (*domain.Course, error) {
	prior, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, r.db, &courseGorm{}, id); err != nil {
		return nil, err
	}
	return prior, nil
}

func courseChanges(u domain.CourseUpdate) map[string]any {
	m := map[string]any{}
	if u.Slug != nil {
		m["slug"] = *u.Slug
	}
	if u.Category != nil {
		m["category"] = string(*u.Category)
	}
	if u.Title != nil {
		m["title"] = *u.Title
	}
	if u.Description != nil {
		m["description"] = *u.Description
	}
	if u.Thumbnail != nil {
		m["thumbnail"] = *u.Thumbnail
	}
	if u.VideoURL != nil {
		m["video_url"] = *u.VideoURL
	}
	if u.Rating != nil {
		m["rating"] = *u.Rating
	}
	if u.Students != nil {
		m["students"] = *u.Students
	}
	if u.Duration != nil {
		m["duration"] = *u.Duration
	}
	if u.Price != nil {
		m["price"] = *u.Price
	}
	if u.Instructor != nil {
		m["instructor"] = *u.Instructor
	}
	if u.Level != nil {
		m["level"] = string(*u.Level)
	}
	if u.Topics != nil {
		topics := *u.Topics
		if topics == nil {
			topics = []string{}
		}
		m["topics"] = datatypes.JSONSlice[string](topics)
	}
	return m
}
