package courseController

import (
	"errors"
	"log"
	"math"
	"time"

	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCourseNotFound is returned when an enrollment references an
// unknown course id
var ErrCourseNotFound = errors.New("course not found")

// EnrollUserInCourse creates an enrollment holding a deep copy of the
// course's module/lesson tree. Completion flags are set on the copy
// only, so two enrollments in the same course never share state.
// Enrolling twice is a no-op returning the existing record.
func EnrollUserInCourse(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, bool, error) {
	var existing courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}

	var course courseModels.Course
	if err := db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		return nil, false, ErrCourseNotFound
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
		Status:   "ENROLLED",
		Progress: 0,
	}
	for _, m := range course.Modules {
		snapModule := courseModels.EnrollmentModule{
			ModuleID:   m.ID,
			Title:      m.Title,
			OrderIndex: m.OrderIndex,
		}
		for _, l := range m.Lessons {
			snapModule.Lessons = append(snapModule.Lessons, courseModels.EnrollmentLesson{
				LessonID:    l.ID,
				Title:       l.Title,
				ContentType: l.ContentType,
				Content:     l.Content,
				Duration:    l.Duration,
				OrderIndex:  l.OrderIndex,
				Completed:   false,
			})
		}
		enrollment.Modules = append(enrollment.Modules, snapModule)
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}
	if err := tx.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		UpdateColumn("students_count", gorm.Expr("students_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}
	tx.Commit()

	return &enrollment, true, nil
}

// Enroll enrolls the current user in a course
func (cc *CourseController) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	enrollment, created, err := EnrollUserInCourse(cc.Db, userID, uint(courseID))
	if errors.Is(err, ErrCourseNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course!", enrollment)
	}

	var user models.User
	if err := cc.Db.Where("id = ?", userID).First(&user).Error; err == nil {
		var course courseModels.Course
		if err := cc.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err == nil {
			utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// ListEnrollments returns all of the current user's enrollments with
// their snapshot trees, insertion order
func (cc *CourseController) ListEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := cc.Db.
		Preload("Course").
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// GetEnrollment returns the current user's enrollment for one course
func (cc *CourseController) GetEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := cc.Db.
		Preload("Course").
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// CompleteLesson sets the completion flag on the enrollment's lesson
// copy and recomputes progress. Unknown course/module/lesson ids fail
// loudly with 404 instead of being silently ignored.
func (cc *CourseController) CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	lessonID := c.Locals("lessonID").(int)

	var enrollment courseModels.Enrollment
	if err := cc.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	// Module and lesson ids refer to the catalog rows the snapshot was
	// copied from.
	var snapModule courseModels.EnrollmentModule
	if err := cc.Db.Where("enrollment_id = ? AND module_id = ?", enrollment.ID, moduleID).First(&snapModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found in this course!", nil)
	}

	var snapLesson courseModels.EnrollmentLesson
	if err := cc.Db.Where("enrollment_module_id = ? AND lesson_id = ?", snapModule.ID, lessonID).First(&snapLesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this module!", nil)
	}

	if !snapLesson.Completed {
		if err := cc.Db.Model(&snapLesson).Update("completed", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete lesson!", nil)
		}
		if err := cc.updateEnrollmentProgress(&enrollment); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	if err := cc.Db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") }).
		First(&enrollment, enrollment.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", enrollment)
}

// updateEnrollmentProgress recomputes progress from the snapshot's
// completed-lesson count. Progress is never settable directly, so it
// cannot desync from the flags.
func (cc *CourseController) updateEnrollmentProgress(enrollment *courseModels.Enrollment) error {
	var total, completed int64

	if err := cc.Db.Model(&courseModels.EnrollmentLesson{}).
		Joins("JOIN enrollment_modules ON enrollment_modules.id = enrollment_lessons.enrollment_module_id").
		Where("enrollment_modules.enrollment_id = ? AND enrollment_modules.deleted_at IS NULL", enrollment.ID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := cc.Db.Model(&courseModels.EnrollmentLesson{}).
		Joins("JOIN enrollment_modules ON enrollment_modules.id = enrollment_lessons.enrollment_module_id").
		Where("enrollment_modules.enrollment_id = ? AND enrollment_modules.deleted_at IS NULL", enrollment.ID).
		Where("enrollment_lessons.completed = ?", true).
		Count(&completed).Error; err != nil {
		return err
	}

	if total == 0 {
		return nil
	}

	progress := int(math.Round(float64(completed) / float64(total) * 100))

	updates := map[string]interface{}{"progress": progress}
	if progress == 100 && enrollment.Status != "COMPLETED" {
		now := time.Now()
		updates["status"] = "COMPLETED"
		updates["completed_at"] = &now
	}

	if err := cc.Db.Model(enrollment).Updates(updates).Error; err != nil {
		return err
	}

	if progress == 100 {
		cc.issueCertificate(enrollment)
	}

	return nil
}

// issueCertificate creates the completion certificate once per
// (user, course) and notifies the learner
func (cc *CourseController) issueCertificate(enrollment *courseModels.Enrollment) {
	var existing courseModels.Certificate
	if err := cc.Db.Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).First(&existing).Error; err == nil {
		return
	}

	var course courseModels.Course
	if err := cc.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		log.Printf("Certificate: course %d not found: %v", enrollment.CourseID, err)
		return
	}

	certificate := courseModels.Certificate{
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		CourseTitle:       course.Title,
		CertificateNumber: "CERT-" + uuid.NewString(),
		IssuedAt:          time.Now(),
	}

	if err := cc.Db.Create(&certificate).Error; err != nil {
		log.Printf("Certificate: failed to issue for user %d course %d: %v", enrollment.UserID, enrollment.CourseID, err)
		return
	}

	var user models.User
	if err := cc.Db.Where("id = ?", enrollment.UserID).First(&user).Error; err == nil {
		utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title, certificate.CertificateNumber)
	}
}
