package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateCoursePayload is the instructor's course draft, including the
// nested module/lesson tree
type CreateCoursePayload struct {
	Title       string                `json:"title" validate:"required,min=3"`
	Description string                `json:"description" validate:"required,min=5"`
	Price       float64               `json:"price" validate:"gte=0"`
	Thumbnail   string                `json:"thumbnail"`
	Duration    string                `json:"duration"`
	Level       string                `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Category    string                `json:"category" validate:"required"`
	Modules     []CreateModulePayload `json:"modules" validate:"dive"`
}

type CreateModulePayload struct {
	Title   string                `json:"title" validate:"required"`
	Lessons []CreateLessonPayload `json:"lessons" validate:"dive"`
}

type CreateLessonPayload struct {
	Title       string `json:"title" validate:"required"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=video text audio pdf"`
	Content     string `json:"content"`
	Duration    int    `json:"duration" validate:"gte=0"`
}

// ReviewPayload is a user rating for a course
type ReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseIDParam(c, "id")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CompleteLesson validates the course/module/lesson id triple
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := parseIDParam(c, "courseId")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, err := parseIDParam(c, "moduleId")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		lessonID, err := parseIDParam(c, "lessonId")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
