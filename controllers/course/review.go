package courseController

import (
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview lets an enrolled user rate a course once. The course's
// rating becomes the average of all submitted reviews.
func (cc *CourseController) SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReview").(*courseValidator.ReviewPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := cc.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := cc.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course to leave a review!", nil)
	}

	var existingReview courseModels.CourseReview
	if err := cc.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := courseModels.CourseReview{
		CourseID: uint(courseID),
		UserID:   userID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := cc.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Fold the new average into the catalog row
	var avg float64
	if err := cc.Db.Model(&courseModels.CourseReview{}).
		Where("course_id = ?", courseID).
		Select("AVG(rating)").
		Scan(&avg).Error; err == nil {
		cc.Db.Model(&courseModels.Course{}).Where("id = ?", courseID).UpdateColumn("rating", avg)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// ListReviews returns all reviews for a course, newest first
func (cc *CourseController) ListReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := cc.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []courseModels.CourseReview
	if err := cc.Db.Where("course_id = ?", courseID).Order("created_at desc, id desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
		"rating":  course.Rating,
		"total":   len(reviews),
	})
}
