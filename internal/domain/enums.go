package domain

// Category groups courses in the catalogue.
type Category string

const (
	CategorySoftwareDevelopment Category = "Software Development"
	CategoryAccounting          Category = "Accounting"
	CategorySAP                 Category = "SAP"
	CategoryDesign              Category = "Design"
)

// Level is the difficulty a course is pitched at.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// EnrollmentStatus tracks a course enrollment from submission to completion.
type EnrollmentStatus string

const (
	StatusPending   EnrollmentStatus = "pending"
	StatusConfirmed EnrollmentStatus = "confirmed"
	StatusCompleted EnrollmentStatus = "completed"
)

// The slices below are the single source of truth for the allowed values.
// Their order is the order used in error messages.
var (
	CategoryValues         = []string{string(CategorySoftwareDevelopment), string(CategoryAccounting), string(CategorySAP), string(CategoryDesign)}
	LevelValues            = []string{string(LevelBeginner), string(LevelIntermediate), string(LevelAdvanced)}
	EnrollmentStatusValues = []string{string(StatusPending), string(StatusConfirmed), string(StatusCompleted)}
)

func (c Category) IsValid() bool { return contains(CategoryValues, string(c)) }

func (l Level) IsValid() bool { return contains(LevelValues, string(l)) }

func (s EnrollmentStatus) IsValid() bool { return contains(EnrollmentStatusValues, string(s)) }

func contains(values []string, v string) bool {
	for _, allowed := range values {
		if allowed == v {
			return true
		}
	}
	return false
}
