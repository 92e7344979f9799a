package courseController

import (
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseController serves the course catalog
type CourseController struct {
	Db *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Db: db}
}

// ListCourses returns the full catalog in insertion order
func (cc *CourseController) ListCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := cc.Db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Order("id asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourse returns a single course with its module/lesson tree
func (cc *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := cc.Db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse appends an instructor draft to the catalog. Rating and
// students count always start at zero regardless of the payload.
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	instructorName, _ := c.Locals("name").(string)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Price:         reqData.Price,
		Instructor:    instructorName,
		Thumbnail:     reqData.Thumbnail,
		Duration:      reqData.Duration,
		Level:         reqData.Level,
		Category:      reqData.Category,
		Rating:        0,
		StudentsCount: 0,
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}

	for mi, m := range reqData.Modules {
		module := courseModels.Module{
			Title:      m.Title,
			OrderIndex: mi,
		}
		for li, l := range m.Lessons {
			contentType := l.ContentType
			if contentType == "" {
				contentType = "video"
			}
			module.Lessons = append(module.Lessons, courseModels.Lesson{
				Title:       l.Title,
				ContentType: contentType,
				Content:     l.Content,
				Duration:    l.Duration,
				OrderIndex:  li,
			})
		}
		course.Modules = append(course.Modules, module)
	}

	if err := cc.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}
