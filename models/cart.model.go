package models

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CartItem is a (user, course) pair in the pre-checkout basket.
// At most one item per distinct course id; re-adding is a no-op.
type CartItem struct {
	gorm.Model
	UserID   uint                `json:"user_id" gorm:"index;not null"`
	CourseID uint                `json:"course_id" gorm:"index;not null"`
	Quantity int                 `json:"quantity" gorm:"default:1"`
	Course   courseModels.Course `json:"course" gorm:"foreignKey:CourseID"`
}
