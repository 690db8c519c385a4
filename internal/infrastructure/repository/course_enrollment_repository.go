package repository

import (
	"context"

	"gorm.io/gorm"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

type CourseEnrollmentRepository struct {
	db *gorm.DB
}

func NewCourseEnrollmentRepository(db *gorm.DB) *CourseEnrollmentRepository {
	return &CourseEnrollmentRepository{db: db}
}

func (r *CourseEnrollmentRepository) GetByID(ctx context.Context, id int64) (*domain.CourseEnrollment, error) {
	var row courseEnrollmentGorm
	if err := first(ctx, r.db, &row, id); err != nil {
		return nil, err
	}
	return toDomainCourseEnrollment(&row), nil
}

func (r *CourseEnrollmentRepository) List(ctx context.Context, f query.Filter, p query.Page) ([]domain.CourseEnrollment, error) {
	q, err := applyFilter(r.db.WithContext(ctx).Model(&courseEnrollmentGorm{}), f, courseEnrollmentColumns)
	if err != nil {
		return nil, err
	}
	var rows []courseEnrollmentGorm
	if err := applyPage(q, p).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CourseEnrollment, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomainCourseEnrollment(&rows[i]))
	}
	return out, nil
}

func (r *CourseEnrollmentRepository) Create(ctx context.Context, e *domain.CourseEnrollment) error {
	row := toGormCourseEnrollment(e)
	row.ID = 0
	row.CreatedAt = now()
	if row.EnrollmentStatus == "" {
		row.EnrollmentStatus = string(domain.StatusPending)
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*e = *toDomainCourseEnrollment(row)
	return nil
}

func (r *CourseEnrollmentRepository) Update(ctx context.Context, id int64, u domain.CourseEnrollmentUpdate) (*domain.CourseEnrollment, error) {
	changes := map[string]any{}
	if u.CourseID != nil {
		changes["course_id"] = *u.CourseID
	}
	if u.StudentName != nil {
		changes["student_name"] = *u.StudentName
	}
	if u.StudentEmail != nil {
		changes["student_email"] = *u.StudentEmail
	}
	if u.StudentPhone != nil {
		changes["student_phone"] = *u.StudentPhone
	}
	if u.MessageSet {
		// nil clears the column
		changes["message"] = u.Message
	}
	if u.EnrollmentStatus != nil {
		changes["enrollment_status"] = string(*u.EnrollmentStatus)
	}

	if len(changes) > 0 {
		if err := updateByID(ctx, r.db, &courseEnrollmentGorm{}, id, changes); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *CourseEnrollmentRepository) Delete(ctx context.Context, id int64) (*domain.CourseEnrollment, error) {
	prior, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, r.db, &courseEnrollmentGorm{}, id); err != nil {
		return nil, err
	}
	return prior, nil
}
