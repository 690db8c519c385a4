package domain

import "time"

type Course struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl"`
	Rating      float64   `json:"rating"`
	Students    int64     `json:"students"`
	Duration    float64   `json:"duration"` // hours
	Price       float64   `json:"price"`
	Instructor  string    `json:"instructor"`
	Level       Level     `json:"level"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourseUpdate carries the fields present in a partial update. Nil means untouched.
type CourseUpdate struct {
	Slug        *string
	Category    *Category
	Title       *string
	Description *string
	Thumbnail   *string
	VideoURL    *string
	Rating      *float64
	Students    *int64
	Duration    *float64
	Price       *float64
	Instructor  *string
	Level       *Level
	Topics      *[]string
}

func (u CourseUpdate) IsEmpty() bool {
	return u.Slug == nil && u.Category == nil && u.Title == nil && u.Description == nil &&
		u.Thumbnail == nil && u.VideoURL == nil && u.Rating == nil && u.Students == nil &&
		u.Duration == nil && u.Price == nil && u.Instructor == nil && u.Level == nil && u.Topics == nil
}
