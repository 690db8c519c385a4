package domain

import "time"

// CourseEnrollment is a student's request to join a specific course.
type CourseEnrollment struct {
	ID               int64            `json:"id"`
	CourseID         int64            `json:"courseId"`
	StudentName      string           `json:"studentName"`
	StudentEmail     string           `json:"studentEmail"`
	StudentPhone     string           `json:"studentPhone"`
	Message          *string          `json:"message"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// CourseEnrollmentUpdate carries the fields present in a partial update.
// Message is tri-state: MessageSet with a nil Message clears it.
type CourseEnrollmentUpdate struct {
	CourseID         *int64
	StudentName      *string
	StudentEmail     *string
	StudentPhone     *string
	MessageSet       bool
	Message          *string
	EnrollmentStatus *EnrollmentStatus
}

func (u CourseEnrollmentUpdate) IsEmpty() bool {
	return u.CourseID == nil && u.StudentName == nil && u.StudentEmail == nil &&
		u.StudentPhone == nil && !u.MessageSet && u.EnrollmentStatus == nil
}

// Enrollment is a general, course-agnostic inquiry from the enroll page.
type Enrollment struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	CourseInterested *string   `json:"courseInterested"`
	Message          *string   `json:"message"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TeamApplication is an instructor application from the join-team page.
type TeamApplication struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PositionApplied   string    `json:"positionApplied"`
	Specialization    string    `json:"specialization"`
	YearsOfExperience string    `json:"yearsOfExperience"`
	ResumeURL         *string   `json:"resumeUrl"`
	CoverLetter       string    `json:"coverLetter"`
	LinkedinURL       *string   `json:"linkedinUrl"`
	PortfolioURL      *string   `json:"portfolioUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}
