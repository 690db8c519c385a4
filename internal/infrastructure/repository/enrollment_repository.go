package repository

import (
	"context"

	"gorm.io/gorm"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	var row enrollmentGorm
	if err := first(ctx, r.db, &row, id); err != nil {
		return nil, err
	}
	return toDomainEnrollment(&row), nil
}

func (r *EnrollmentRepository) List(ctx context.Context, f query.Filter, p query.Page) ([]domain.Enrollment, error) {
	q, err := applyFilter(r.db.WithContext(ctx).Model(&enrollmentGorm{}), f, enrollmentColumns)
	if err != nil {
		return nil, err
	}
	var rows []enrollmentGorm
	if err := applyPage(q, p).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Enrollment, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomainEnrollment(&rows[i]))
	}
	return out, nil
}

func (r *EnrollmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&enrollmentGorm{}).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	row := toGormEnrollment(e)
	row.ID = 0
	row.CreatedAt = now()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*e = *toDomainEnrollment(row)
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (*domain.Enrollment, error) {
	prior, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, r.db, &enrollmentGorm{}, id); err != nil {
		return nil, err
	}
	return prior, nil
}
