package validation

import (
	"emaxplatform/internal/domain"
)

var (
	courseSlug        = Required("slug", "MISSING_SLUG", "Slug")
	courseCategory    = Required("category", "MISSING_CATEGORY", "Category")
	courseTitle       = Required("title", "MISSING_TITLE", "Title")
	courseDescription = Required("description", "MISSING_DESCRIPTION", "Description")
	courseThumbnail   = Required("thumbnail", "MISSING_THUMBNAIL", "Thumbnail")
	courseVideoURL    = Required("videoUrl", "MISSING_VIDEO_URL", "Video URL")
	courseRating      = Rule{"rating", "MISSING_RATING", "Rating is required and must be a number"}
	courseStudents    = Rule{"students", "MISSING_STUDENTS", "Students is required and must be a number"}
	courseDuration    = Rule{"duration", "MISSING_DURATION", "Duration is required and must be a number"}
	coursePrice       = Rule{"price", "MISSING_PRICE", "Price is required and must be a number"}
	courseInstructor  = Required("instructor", "MISSING_INSTRUCTOR", "Instructor")
	courseLevel       = Required("level", "MISSING_LEVEL", "Level")
	courseTopics      = Rule{"topics", "MISSING_TOPICS", "Topics is required and must be an array"}

	studentsInteger = Rule{"students", "INVALID_STUDENTS", "Students must be an integer"}
	topicsOfStrings = Rule{"topics", "INVALID_TOPICS", "Topics must be an array of strings"}
)

// Course validates a creation payload. Fields are checked in declaration
// order and the first failure is returned.
func Course(p Payload) (domain.Course, error) {
	var c domain.Course
	var err error

	if c.Slug, err = RequireString(p, courseSlug); err != nil {
		return domain.Course{}, err
	}
	category, err := RequireString(p, courseCategory)
	if err != nil {
		return domain.Course{}, err
	}
	if err := checkCategory(p); err != nil {
		return domain.Course{}, err
	}
	c.Category = domain.Category(category)

	if c.Title, err = RequireString(p, courseTitle); err != nil {
		return domain.Course{}, err
	}
	if c.Description, err = RequireString(p, courseDescription); err != nil {
		return domain.Course{}, err
	}
	if c.Thumbnail, err = RequireString(p, courseThumbnail); err != nil {
		return domain.Course{}, err
	}
	if c.VideoURL, err = RequireString(p, courseVideoURL); err != nil {
		return domain.Course{}, err
	}
	if c.Rating, err = RequireNumber(p, courseRating); err != nil {
		return domain.Course{}, err
	}
	if _, err = RequireNumber(p, courseStudents); err != nil {
		return domain.Course{}, err
	}
	students, ok := p.Integer("students")
	if !ok {
		return domain.Course{}, studentsInteger.fail()
	}
	c.Students = students
	if c.Duration, err = RequireNumber(p, courseDuration); err != nil {
		return domain.Course{}, err
	}
	if c.Price, err = RequireNumber(p, coursePrice); err != nil {
		return domain.Course{}, err
	}
	if c.Instructor, err = RequireString(p, courseInstructor); err != nil {
		return domain.Course{}, err
	}
	level, err := RequireString(p, courseLevel)
	if err != nil {
		return domain.Course{}, err
	}
	if err := checkLevel(p); err != nil {
		return domain.Course{}, err
	}
	c.Level = domain.Level(level)

	if c.Topics, err = RequireStrings(p, courseTopics, topicsOfStrings); err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

// CourseChanges validates a partial update. Only keys present in the
// payload are checked and returned.
func CourseChanges(p Payload) (domain.CourseUpdate, error) {
	var u domain.CourseUpdate
	var err error

	if u.Slug, err = OptionalString(p, Present("slug", "INVALID_SLUG", "Slug")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if p.Has("category") {
		category, err := RequireString(p, Present("category", "INVALID_CATEGORY", "Category"))
		if err != nil {
			return domain.CourseUpdate{}, err
		}
		if err := checkCategory(p); err != nil {
			return domain.CourseUpdate{}, err
		}
		c := domain.Category(category)
		u.Category = &c
	}
	if u.Title, err = OptionalString(p, Present("title", "INVALID_TITLE", "Title")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.Description, err = OptionalString(p, Present("description", "INVALID_DESCRIPTION", "Description")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.Thumbnail, err = OptionalString(p, Present("thumbnail", "INVALID_THUMBNAIL", "Thumbnail")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.VideoURL, err = OptionalString(p, Present("videoUrl", "INVALID_VIDEO_URL", "Video URL")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.Rating, err = OptionalNumber(p, Rule{"rating", "INVALID_RATING", "Rating must be a number"}); err != nil {
		return domain.CourseUpdate{}, err
	}
	if p.Has("students") {
		if _, err := RequireNumber(p, Rule{"students", "INVALID_STUDENTS", "Students must be a number"}); err != nil {
			return domain.CourseUpdate{}, err
		}
		students, ok := p.Integer("students")
		if !ok {
			return domain.CourseUpdate{}, studentsInteger.fail()
		}
		u.Students = &students
	}
	if u.Duration, err = OptionalNumber(p, Rule{"duration", "INVALID_DURATION", "Duration must be a number"}); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.Price, err = OptionalNumber(p, Rule{"price", "INVALID_PRICE", "Price must be a number"}); err != nil {
		return domain.CourseUpdate{}, err
	}
	if u.Instructor, err = OptionalString(p, Present("instructor", "INVALID_INSTRUCTOR", "Instructor")); err != nil {
		return domain.CourseUpdate{}, err
	}
	if p.Has("level") {
		level, err := RequireString(p, Present("level", "INVALID_LEVEL", "Level"))
		if err != nil {
			return domain.CourseUpdate{}, err
		}
		if err := checkLevel(p); err != nil {
			return domain.CourseUpdate{}, err
		}
		l := domain.Level(level)
		u.Level = &l
	}
	if p.Has("topics") {
		topics, err := RequireStrings(p, Rule{"topics", "INVALID_TOPICS", "Topics must be an array"}, topicsOfStrings)
		if err != nil {
			return domain.CourseUpdate{}, err
		}
		u.Topics = &topics
	}
	return u, nil
}

// Membership is checked on the value as sent, so " SAP " is not SAP.
func checkCategory(p Payload) error {
	raw, _ := p.String("category")
	return CheckEnum(raw, domain.CategoryValues, "INVALID_CATEGORY", "Category")
}

func checkLevel(p Payload) error {
	raw, _ := p.String("level")
	return CheckEnum(raw, domain.LevelValues, "INVALID_LEVEL", "Level")
}
