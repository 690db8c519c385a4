package repository

import (
	"time"

	"gorm.io/datatypes"

	"emaxplatform/internal/domain"
)

type courseGorm struct {
	ID          int64                       `gorm:"primaryKey;autoIncrement"`
	Slug        string                      `gorm:"size:255;not null;uniqueIndex"`
	Category    string                      `gorm:"size:64;not null;index"`
	Title       string                      `gorm:"not null"`
	Description string                      `gorm:"not null"`
	Thumbnail   string                      `gorm:"not null"`
	VideoURL    string                      `gorm:"not null"`
	Rating      float64                     `gorm:"not null"`
	Students    int64                       `gorm:"not null"`
	Duration    float64                     `gorm:"not null"`
	Price       float64                     `gorm:"not null"`
	Instructor  string                      `gorm:"not null"`
	Level       string                      `gorm:"size:32;not null"`
	Topics      datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt   time.Time                   `gorm:"not null;index"`
}

func (courseGorm) TableName() string { return "courses" }

type courseEnrollmentGorm struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	CourseID         int64     `gorm:"not null;index"`
	StudentName      string    `gorm:"not null"`
	StudentEmail     string    `gorm:"not null"`
	StudentPhone     string    `gorm:"not null"`
	Message          *string
	EnrollmentStatus string    `gorm:"size:32;not null;index"`
	CreatedAt        time.Time `gorm:"not null;index"`
}

func (courseEnrollmentGorm) TableName() string { return "course_enrollments" }

type enrollmentGorm struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	CourseInterested *string
	Message          *string
	CreatedAt        time.Time `gorm:"not null;index"`
}

func (enrollmentGorm) TableName() string { return "enrollments" }

type teamApplicationGorm struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Name              string `gorm:"not null"`
	Email             string `gorm:"not null"`
	Phone             string `gorm:"not null"`
	PositionApplied   string `gorm:"not null"`
	Specialization    string `gorm:"not null"`
	YearsOfExperience string `gorm:"not null"`
	ResumeURL         *string
	CoverLetter       string `gorm:"not null"`
	LinkedinURL       *string
	PortfolioURL      *string
	CreatedAt         time.Time `gorm:"not null;index"`
}

func (teamApplicationGorm) TableName() string { return "team_applications" }

// Models lists the row types to migrate.
func Models() []any {
	return []any{&courseGorm{}, &courseEnrollmentGorm{}, &enrollmentGorm{}, &teamApplicationGorm{}}
}

func toGormCourse(c *domain.Course) *courseGorm {
	topics := c.Topics
	if topics == nil {
		topics = []string{}
	}
	return &courseGorm{
		ID:          c.ID,
		Slug:        c.Slug,
		Category:    string(c.Category),
		Title:       c.Title,
		Description: c.Description,
		Thumbnail:   c.Thumbnail,
		VideoURL:    c.VideoURL,
		Rating:      c.Rating,
		Students:    c.Students,
		Duration:    c.Duration,
		Price:       c.Price,
		Instructor:  c.Instructor,
		Level:       string(c.Level),
		Topics:      datatypes.JSONSlice[string](topics),
		CreatedAt:   c.CreatedAt,
	}
}

func toDomainCourse(r *courseGorm) *domain.Course {
	topics := []string(r.Topics)
	if topics == nil {
		topics = []string{}
	}
	return &domain.Course{
		ID:          r.ID,
		Slug:        r.Slug,
		Category:    domain.Category(r.Category),
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		VideoURL:    r.VideoURL,
		Rating:      r.Rating,
		Students:    r.Students,
		Duration:    r.Duration,
		Price:       r.Price,
		Instructor:  r.Instructor,
		Level:       domain.Level(r.Level),
		Topics:      topics,
		CreatedAt:   r.CreatedAt,
	}
}

func toGormCourseEnrollment(e *domain.CourseEnrollment) *courseEnrollmentGorm {
	return &courseEnrollmentGorm{
		ID:               e.ID,
		CourseID:         e.CourseID,
		StudentName:      e.StudentName,
		StudentEmail:     e.StudentEmail,
		StudentPhone:     e.StudentPhone,
		Message:          e.Message,
		EnrollmentStatus: string(e.EnrollmentStatus),
		CreatedAt:        e.CreatedAt,
	}
}

func toDomainCourseEnrollment(r *courseEnrollmentGorm) *domain.CourseEnrollment {
	return &domain.CourseEnrollment{
		ID:               r.ID,
		CourseID:         r.CourseID,
		StudentName:      r.StudentName,
		StudentEmail:     r.StudentEmail,
		StudentPhone:     r.StudentPhone,
		Message:          r.Message,
		EnrollmentStatus: domain.EnrollmentStatus(r.EnrollmentStatus),
		CreatedAt:        r.CreatedAt,
	}
}

func toGormEnrollment(e *domain.Enrollment) *enrollmentGorm {
	return &enrollmentGorm{
		ID:               e.ID,
		Name:             e.Name,
		Email:            e.Email,
		Phone:            e.Phone,
		CourseInterested: e.CourseInterested,
		Message:          e.Message,
		CreatedAt:        e.CreatedAt,
	}
}

func toDomainEnrollment(r *enrollmentGorm) *domain.Enrollment {
	return &domain.Enrollment{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		CourseInterested: r.CourseInterested,
		Message:          r.Message,
		CreatedAt:        r.CreatedAt,
	}
}

func toGormTeamApplication(a *domain.TeamApplication) *teamApplicationGorm {
	return &teamApplicationGorm{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		Phone:             a.Phone,
		PositionApplied:   a.PositionApplied,
		Specialization:    a.Specialization,
		YearsOfExperience: a.YearsOfExperience,
		ResumeURL:         a.ResumeURL,
		CoverLetter:       a.CoverLetter,
		LinkedinURL:       a.LinkedinURL,
		PortfolioURL:      a.PortfolioURL,
		CreatedAt:         a.CreatedAt,
	}
}

func toDomainTeamApplication(r *teamApplicationGorm) *domain.TeamApplication {
	return &domain.TeamApplication{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		PositionApplied:   r.PositionApplied,
		Specialization:    r.Specialization,
		YearsOfExperience: r.YearsOfExperience,
		ResumeURL:         r.ResumeURL,
		CoverLetter:       r.CoverLetter,
		LinkedinURL:       r.LinkedinURL,
		PortfolioURL:      r.PortfolioURL,
		CreatedAt:         r.CreatedAt,
	}
}
