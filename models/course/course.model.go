package course

import "gorm.io/gorm"

// Course represents a catalog course definition shared by all users
type Course struct {
	gorm.Model
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" gorm:"default:0"`
	Instructor       string   `json:"instructor"`
	InstructorAvatar string   `json:"instructor_avatar"`
	Thumbnail        string   `json:"thumbnail"`
	Rating           float64  `json:"rating" gorm:"default:0"`
	StudentsCount    int      `json:"students_count" gorm:"default:0"`
	Duration         string   `json:"duration"` // duration label, e.g. "12 hours"
	Level            string   `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Category         string   `json:"category"`
	Modules          []Module `json:"modules"`
}

// Module represents a section within a course
type Module struct {
	gorm.Model
	CourseID   uint     `json:"course_id" gorm:"index;not null"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"order_index" gorm:"default:0"`
	Lessons    []Lesson `json:"lessons"`
}

// Lesson represents a single content unit within a module
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'video'"` // video, text, audio, pdf
	Content     string `json:"content"`                             // URL or inline text
	Duration    int    `json:"duration" gorm:"default:0"`           // minutes
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
}
