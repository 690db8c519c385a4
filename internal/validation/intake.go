package validation

import (
	"strings"

	"emaxplatform/internal/domain"
)

var (
	ceCourseID     = Rule{"courseId", "MISSING_COURSE_ID", "courseId is required"}
	ceCourseIDType = Rule{"courseId", "INVALID_COURSE_ID_TYPE", "courseId must be a valid integer"}
	ceStudentName  = Required("studentName", "MISSING_STUDENT_NAME", "studentName")
	ceStudentEmail = Required("studentEmail", "MISSING_STUDENT_EMAIL", "studentEmail")
	ceStudentPhone = Required("studentPhone", "MISSING_STUDENT_PHONE", "studentPhone")

	enName  = Required("name", "MISSING_NAME", "Name")
	enEmail = Required("email", "MISSING_EMAIL", "Email")
	enPhone = Required("phone", "MISSING_PHONE", "Phone")

	taName           = Rule{"name", "MISSING_NAME", "Name is required"}
	taEmail          = Rule{"email", "MISSING_EMAIL", "Email is required"}
	taPhone          = Rule{"phone", "MISSING_PHONE", "Phone is required"}
	taPosition       = Rule{"positionApplied", "MISSING_POSITION", "Position applied is required"}
	taSpecialization = Rule{"specialization", "MISSING_SPECIALIZATION", "Specialization is required"}
	taExperience     = Rule{"yearsOfExperience", "MISSING_EXPERIENCE", "Years of experience is required"}
	taCoverLetter    = Rule{"coverLetter", "MISSING_COVER_LETTER", "Cover letter is required"}
)

// CourseEnrollment validates a creation payload. The referenced course is
// not looked up here.
func CourseEnrollment(p Payload) (domain.CourseEnrollment, error) {
	var e domain.CourseEnrollment
	var err error

	if missingValue(p, ceCourseID.Field) {
		return domain.CourseEnrollment{}, ceCourseID.fail()
	}
	if e.StudentName, err = RequireString(p, ceStudentName); err != nil {
		return domain.CourseEnrollment{}, err
	}
	email, err := RequireString(p, ceStudentEmail)
	if err != nil {
		return domain.CourseEnrollment{}, err
	}
	e.StudentEmail = Email(email)
	if e.StudentPhone, err = RequireString(p, ceStudentPhone); err != nil {
		return domain.CourseEnrollment{}, err
	}
	courseID, ok := p.Integer(ceCourseIDType.Field)
	if !ok {
		return domain.CourseEnrollment{}, ceCourseIDType.fail()
	}
	e.CourseID = courseID

	e.EnrollmentStatus = domain.StatusPending
	if v := p["enrollmentStatus"]; v != nil && v != "" {
		status, err := enrollmentStatus(p)
		if err != nil {
			return domain.CourseEnrollment{}, err
		}
		e.EnrollmentStatus = status
	}
	e.Message = OptionalText(p, "message")
	return e, nil
}

// CourseEnrollmentChanges validates a partial update.
func CourseEnrollmentChanges(p Payload) (domain.CourseEnrollmentUpdate, error) {
	var u domain.CourseEnrollmentUpdate
	var err error

	if p.Has(ceCourseIDType.Field) {
		courseID, ok := p.Integer(ceCourseIDType.Field)
		if !ok {
			return domain.CourseEnrollmentUpdate{}, ceCourseIDType.fail()
		}
		u.CourseID = &courseID
	}
	if u.StudentName, err = OptionalString(p, Present("studentName", "INVALID_STUDENT_NAME", "studentName")); err != nil {
		return domain.CourseEnrollmentUpdate{}, err
	}
	if u.StudentEmail, err = OptionalString(p, Present("studentEmail", "INVALID_STUDENT_EMAIL", "studentEmail")); err != nil {
		return domain.CourseEnrollmentUpdate{}, err
	}
	if u.StudentEmail != nil {
		email := Email(*u.StudentEmail)
		u.StudentEmail = &email
	}
	if u.StudentPhone, err = OptionalString(p, Present("studentPhone", "INVALID_STUDENT_PHONE", "studentPhone")); err != nil {
		return domain.CourseEnrollmentUpdate{}, err
	}
	if p.Has("message") {
		u.MessageSet = true
		u.Message = OptionalText(p, "message")
	}
	if p.Has("enrollmentStatus") {
		status, err := enrollmentStatus(p)
		if err != nil {
			return domain.CourseEnrollmentUpdate{}, err
		}
		u.EnrollmentStatus = &status
	}
	return u, nil
}

// Enrollment validates a general inquiry.
func Enrollment(p Payload) (domain.Enrollment, error) {
	var e domain.Enrollment
	var err error

	if e.Name, err = RequireString(p, enName); err != nil {
		return domain.Enrollment{}, err
	}
	email, err := RequireString(p, enEmail)
	if err != nil {
		return domain.Enrollment{}, err
	}
	e.Email = Email(email)
	if e.Phone, err = RequireString(p, enPhone); err != nil {
		return domain.Enrollment{}, err
	}
	e.CourseInterested = OptionalText(p, "courseInterested")
	e.Message = OptionalText(p, "message")
	return e, nil
}

// TeamApplication validates an instructor application.
func TeamApplication(p Payload) (domain.TeamApplication, error) {
	var a domain.TeamApplication
	var err error

	if a.Name, err = RequireString(p, taName); err != nil {
		return domain.TeamApplication{}, err
	}
	email, err := RequireString(p, taEmail)
	if err != nil {
		return domain.TeamApplication{}, err
	}
	a.Email = Email(email)
	if a.Phone, err = RequireString(p, taPhone); err != nil {
		return domain.TeamApplication{}, err
	}
	if a.PositionApplied, err = RequireString(p, taPosition); err != nil {
		return domain.TeamApplication{}, err
	}
	if a.Specialization, err = RequireString(p, taSpecialization); err != nil {
		return domain.TeamApplication{}, err
	}
	if a.YearsOfExperience, err = RequireString(p, taExperience); err != nil {
		return domain.TeamApplication{}, err
	}
	if a.CoverLetter, err = RequireString(p, taCoverLetter); err != nil {
		return domain.TeamApplication{}, err
	}
	a.ResumeURL = OptionalText(p, "resumeUrl")
	a.LinkedinURL = OptionalText(p, "linkedinUrl")
	a.PortfolioURL = OptionalText(p, "portfolioUrl")
	return a, nil
}

func enrollmentStatus(p Payload) (domain.EnrollmentStatus, error) {
	raw, _ := p.String("enrollmentStatus")
	if err := CheckEnum(raw, domain.EnrollmentStatusValues, "INVALID_ENROLLMENT_STATUS", "enrollmentStatus"); err != nil {
		return "", err
	}
	return domain.EnrollmentStatus(raw), nil
}

// missingValue treats absent, null and blank strings as missing.
func missingValue(p Payload, key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return true
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}
