package course

import "gorm.io/gorm"

// CourseReview is a single user rating for a course. The average of all
// reviews is folded into Course.Rating.
type CourseReview struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
}
