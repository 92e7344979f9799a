package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress.
// The module/lesson tree is a deep copy of the course taken at enroll
// time, so completion flags are owned per (user, course) and never
// touch the shared catalog rows.
type Enrollment struct {
	gorm.Model
	UserID      uint               `json:"user_id" gorm:"index;not null"`
	CourseID    uint               `json:"course_id" gorm:"index;not null"`
	Status      string             `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, COMPLETED
	Progress    int                `json:"progress" gorm:"default:0"`        // 0-100, derived from snapshot lessons
	CompletedAt *time.Time         `json:"completed_at"`
	Course      Course             `json:"course" gorm:"foreignKey:CourseID"`
	Modules     []EnrollmentModule `json:"modules"`
}

// EnrollmentModule is the per-enrollment copy of a catalog module
type EnrollmentModule struct {
	gorm.Model
	EnrollmentID uint               `json:"enrollment_id" gorm:"index;not null"`
	ModuleID     uint               `json:"module_id" gorm:"index"` // catalog module this was copied from
	Title        string             `json:"title"`
	OrderIndex   int                `json:"order_index" gorm:"default:0"`
	Lessons      []EnrollmentLesson `json:"lessons"`
}

// EnrollmentLesson is the per-enrollment copy of a catalog lesson
// carrying the user's completion flag
type EnrollmentLesson struct {
	gorm.Model
	EnrollmentModuleID uint   `json:"enrollment_module_id" gorm:"index;not null"`
	LessonID           uint   `json:"lesson_id" gorm:"index"` // catalog lesson this was copied from
	Title              string `json:"title"`
	ContentType        string `json:"content_type"`
	Content            string `json:"content"`
	Duration           int    `json:"duration" gorm:"default:0"`
	OrderIndex         int    `json:"order_index" gorm:"default:0"`
	Completed          bool   `json:"completed" gorm:"default:false"`
}
