package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"emaxplatform/internal/domain"
	"emaxplatform/internal/query"
)

// columns maps the field names used in filters to table columns.
type columns map[string]string

var (
	courseColumns = columns{
		"title":       "title",
		"description": "description",
		"instructor":  "instructor",
		"category":    "category",
		"level":       "level",
		"slug":        "slug",
	}
	courseEnrollmentColumns = columns{
		"courseId":         "course_id",
		"studentName":      "student_name",
		"studentEmail":     "student_email",
		"enrollmentStatus": "enrollment_status",
	}
	enrollmentColumns = columns{
		"name":  "name",
		"email": "email",
		"phone": "phone",
	}
	teamApplicationColumns = columns{
		"name":            "name",
		"email":           "email",
		"positionApplied": "position_applied",
		"specialization":  "specialization",
	}
)

// applyFilter translates f into WHERE conditions. Each AnyContains becomes a
// parenthesised OR group and every clause is AND-ed with the others.
func applyFilter(db *gorm.DB, f query.Filter, cols columns) (*gorm.DB, error) {
	for _, c := range f.Clauses {
		switch c := c.(type) {
		case query.AnyContains:
			parts := make([]string, 0, len(c.Fields))
			args := make([]any, 0, len(c.Fields))
			pattern := query.LikePattern(c.Term)
			for _, field := range c.Fields {
				col, ok := cols[field]
				if !ok {
					return nil, fmt.Errorf("unknown search field %q", field)
				}
				parts = append(parts, "LOWER("+col+`) LIKE LOWER(?) ESCAPE '\'`)
				args = append(args, pattern)
			}
			db = db.Where("("+strings.Join(parts, " OR ")+")", args...)
		case query.Equals:
			col, ok := cols[c.Field]
			if !ok {
				return nil, fmt.Errorf("unknown filter field %q", c.Field)
			}
			db = db.Where(col+" = ?", c.Value)
		default:
			return nil, fmt.Errorf("unsupported clause %T", c)
		}
	}
	return db, nil
}

func applyPage(db *gorm.DB, p query.Page) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC").Limit(p.Limit).Offset(p.Offset)
}

// first loads the row with the given id into dest.
func first(ctx context.Context, db *gorm.DB, dest any, id int64) error {
	err := db.WithContext(ctx).Where("id = ?", id).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// updateByID applies changes to the row with the given id. Zero affected rows
// means the row is gone.
func updateByID(ctx context.Context, db *gorm.DB, model any, id int64, changes map[string]any) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// now is the server-assigned creation time. Postgres keeps microseconds.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
