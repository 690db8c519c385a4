package repository

import (
	"context"

	"gorm.io/gorm"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

type TeamApplicationRepository struct {
	db *gorm.DB
}

func NewTeamApplicationRepository(db *gorm.DB) *TeamApplicationRepository {
	return &TeamApplicationRepository{db: db}
}

func (r *TeamApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.TeamApplication, error) {
	var row teamApplicationGorm
	if err := first(ctx, r.db, &row, id); err != nil {
		return nil, err
	}
	return toDomainTeamApplication(&row), nil
}

func (r *TeamApplicationRepository) List(ctx context.Context, f query.Filter, p query.Page) ([]domain.TeamApplication, error) {
	q, err := applyFilter(r.db.WithContext(ctx).Model(&teamApplicationGorm{}), f, teamApplicationColumns)
	if err != nil {
		return nil, err
	}
	var rows []teamApplicationGorm
	if err := applyPage(q, p).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.TeamApplication, 0, len(rows))
	for i := range rows {
		out = append(out, *toDomainTeamApplication(&rows[i]))
	}
	return out, nil
}

func (r *TeamApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&teamApplicationGorm{}).Count(&count).Error
	return count, err
}

func (r *TeamApplicationRepository) Create(ctx context.Context, a *domain.TeamApplication) error {
	row := toGormTeamApplication(a)
	row.ID = 0
	row.CreatedAt = now()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*a = *toDomainTeamApplication(row)
	return nil
}

func (r *TeamApplicationRepository) Delete(ctx context.Context, id int64) (*domain.TeamApplication, error) {
	prior, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteByID(ctx, r.db, &teamApplicationGorm{}, id); err != nil {
		return nil, err
	}
	return prior, nil
}
