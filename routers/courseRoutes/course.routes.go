package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctrl *courseController.CourseController) {
	courses := app.Group("/api/courses", middleware.JWTMiddleware)
	courses.Get("/", ctrl.ListCourses)
	courses.Post("/", middleware.InstructorOnly, courseValidator.CreateCourse(), ctrl.CreateCourse)
	courses.Get("/:id", courseValidator.CourseID(), ctrl.GetCourse)
	courses.Post("/:id/enroll", courseValidator.CourseID(), ctrl.Enroll)
	courses.Post("/:id/reviews", courseValidator.CourseID(), courseValidator.SubmitReview(), ctrl.SubmitReview)
	courses.Get("/:id/reviews", courseValidator.CourseID(), ctrl.ListReviews)
	courses.Post("/:courseId/modules/:moduleId/lessons/:lessonId/complete",
		courseValidator.CompleteLesson(), ctrl.CompleteLesson)

	enrollments := app.Group("/api/enrollments", middleware.JWTMiddleware)
	enrollments.Get("/", ctrl.ListEnrollments)
	enrollments.Get("/:id", courseValidator.CourseID(), ctrl.GetEnrollment)

	app.Get("/api/certificates", middleware.JWTMiddleware, ctrl.ListCertificates)
}
