package courseController_test

import (
	"fmt"
	"testing"
	"time"

	"lms/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesSeededCatalog(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "GET", "/api/courses", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := testutil.Data(t, resp)
	courses := data["courses"].([]interface{})
	require.Len(t, courses, 3)

	// Insertion order
	first := courses[0].(map[string]interface{})
	assert.Equal(t, "Complete React Development Course", first["title"])
	assert.Equal(t, float64(1), first["ID"])

	modules := first["modules"].([]interface{})
	require.Len(t, modules, 2)
	lessons := modules[0].(map[string]interface{})["lessons"].([]interface{})
	assert.Len(t, lessons, 3)
}

func TestCreateCourse(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	instructor := testutil.Register(t, app, "Ivy Instructor", "ivy@example.com", "instructor")
	learner := testutil.Register(t, app, "Larry Learner", "larry@example.com", "learner")

	payload := map[string]interface{}{
		"title":       "Go for Backend Engineers",
		"description": "Build production services in Go.",
		"price":       49.99,
		"category":    "Programming",
		"level":       "Intermediate",
		"modules": []map[string]interface{}{
			{
				"title": "Getting Started",
				"lessons": []map[string]interface{}{
					{"title": "Why Go?", "content_type": "video", "content": "intro", "duration": 10},
					{"title": "Tooling", "content_type": "text", "content": "go install ...", "duration": 5},
				},
			},
		},
	}

	resp := testutil.DoJSON(t, app, "POST", "/api/courses", instructor, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := testutil.Data(t, resp)
	assert.Equal(t, "Go for Backend Engineers", created["title"])
	assert.Equal(t, "Ivy Instructor", created["instructor"])
	assert.Equal(t, float64(0), created["rating"])
	assert.Equal(t, float64(0), created["students_count"])

	// A second course gets a distinct id
	payload["title"] = "Go Concurrency Patterns"
	resp = testutil.DoJSON(t, app, "POST", "/api/courses", instructor, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	second := testutil.Data(t, resp)
	assert.NotEqual(t, created["ID"], second["ID"])

	// Learners cannot create courses
	resp = testutil.DoJSON(t, app, "POST", "/api/courses", learner, payload)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateCourseValidation(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	instructor := testutil.Register(t, app, "Ivy Instructor", "ivy@example.com", "instructor")

	// Empty title
	resp := testutil.DoJSON(t, app, "POST", "/api/courses", instructor, map[string]interface{}{
		"title":       "",
		"description": "A description.",
		"category":    "Programming",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Negative price
	resp = testutil.DoJSON(t, app, "POST", "/api/courses", instructor, map[string]interface{}{
		"title":       "Valid Title",
		"description": "A description.",
		"category":    "Programming",
		"price":       -5,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestEnrollIsIdempotent(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/courses/1/enroll", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	enrollment := testutil.Data(t, resp)
	assert.Equal(t, float64(0), enrollment["progress"])
	assert.Equal(t, "ENROLLED", enrollment["status"])

	// Second enroll is a no-op returning the same record
	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/enroll", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	again := testutil.Data(t, resp)
	assert.Equal(t, enrollment["ID"], again["ID"])

	resp = testutil.DoJSON(t, app, "GET", "/api/enrollments", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := testutil.Data(t, resp)
	assert.Equal(t, float64(1), data["total"])

	// Students count bumped exactly once (seeded at 1250)
	resp = testutil.DoJSON(t, app, "GET", "/api/courses/1", token, nil)
	course := testutil.Data(t, resp)
	assert.Equal(t, float64(1251), course["students_count"])
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/courses/999/enroll", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// lessonRef resolves catalog module/lesson ids for a course
func lessonRefs(t *testing.T, app *fiber.App, token string, courseID int) [][2]int {
	t.Helper()

	resp := testutil.DoJSON(t, app, "GET", fmt.Sprintf("/api/courses/%d", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	course := testutil.Data(t, resp)

	var refs [][2]int
	for _, m := range course["modules"].([]interface{}) {
		module := m.(map[string]interface{})
		moduleID := int(module["ID"].(float64))
		for _, l := range module["lessons"].([]interface{}) {
			lesson := l.(map[string]interface{})
			refs = append(refs, [2]int{moduleID, int(lesson["ID"].(float64))})
		}
	}
	return refs
}

func TestCompleteLessonDerivesProgress(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	// Course 2 has a single module with two lessons
	resp := testutil.DoJSON(t, app, "POST", "/api/courses/2/enroll", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	refs := lessonRefs(t, app, token, 2)
	require.Len(t, refs, 2)

	path := fmt.Sprintf("/api/courses/2/modules/%d/lessons/%d/complete", refs[0][0], refs[0][1])
	resp = testutil.DoJSON(t, app, "POST", path, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollment := testutil.Data(t, resp)
	assert.Equal(t, float64(50), enrollment["progress"])
	assert.Equal(t, "ENROLLED", enrollment["status"])

	// Completing the same lesson again does not move progress
	resp = testutil.DoJSON(t, app, "POST", path, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollment = testutil.Data(t, resp)
	assert.Equal(t, float64(50), enrollment["progress"])

	path = fmt.Sprintf("/api/courses/2/modules/%d/lessons/%d/complete", refs[1][0], refs[1][1])
	resp = testutil.DoJSON(t, app, "POST", path, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollment = testutil.Data(t, resp)
	assert.Equal(t, float64(100), enrollment["progress"])
	assert.Equal(t, "COMPLETED", enrollment["status"])
	assert.NotNil(t, enrollment["completed_at"])

	// Completion issues exactly one certificate
	resp = testutil.DoJSON(t, app, "GET", "/api/certificates", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := testutil.Data(t, resp)
	assert.Equal(t, float64(1), data["total"])
	certificates := data["certificates"].([]interface{})
	cert := certificates[0].(map[string]interface{})
	assert.Equal(t, "Advanced JavaScript Mastery", cert["course_title"])
	assert.Contains(t, cert["certificate_number"], "CERT-")
}

func TestCompleteLessonFailsLoudly(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	// Not enrolled
	resp := testutil.DoJSON(t, app, "POST", "/api/courses/1/modules/1/lessons/1/complete", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/enroll", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unknown module
	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/modules/999/lessons/1/complete", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Lesson not in that module
	refs := lessonRefs(t, app, token, 1)
	require.NotEmpty(t, refs)
	path := fmt.Sprintf("/api/courses/1/modules/%d/lessons/999/complete", refs[0][0])
	resp = testutil.DoJSON(t, app, "POST", path, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Nothing was marked complete along the way
	resp = testutil.DoJSON(t, app, "GET", "/api/enrollments/1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollment := testutil.Data(t, resp)
	assert.Equal(t, float64(0), enrollment["progress"])
}

func TestEnrollmentSnapshotsAreIsolated(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	alice := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")
	bob := testutil.Register(t, app, "Bob Learner", "bob@example.com", "learner")

	for _, token := range []string{alice, bob} {
		resp := testutil.DoJSON(t, app, "POST", "/api/courses/2/enroll", token, nil)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	refs := lessonRefs(t, app, alice, 2)
	path := fmt.Sprintf("/api/courses/2/modules/%d/lessons/%d/complete", refs[0][0], refs[0][1])
	resp := testutil.DoJSON(t, app, "POST", path, alice, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Bob's copy is untouched
	resp = testutil.DoJSON(t, app, "GET", "/api/enrollments/2", bob, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollment := testutil.Data(t, resp)
	assert.Equal(t, float64(0), enrollment["progress"])
	for _, m := range enrollment["modules"].([]interface{}) {
		for _, l := range m.(map[string]interface{})["lessons"].([]interface{}) {
			assert.False(t, l.(map[string]interface{})["completed"].(bool))
		}
	}
}

func TestSubmitReview(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	// Must be enrolled to review
	resp := testutil.DoJSON(t, app, "POST", "/api/courses/1/reviews", token, map[string]interface{}{
		"rating": 5, "comment": "Great course",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/enroll", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/reviews", token, map[string]interface{}{
		"rating": 5, "comment": "Great course",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Rating becomes the review average
	resp = testutil.DoJSON(t, app, "GET", "/api/courses/1", token, nil)
	course := testutil.Data(t, resp)
	assert.Equal(t, float64(5), course["rating"])

	// One review per user per course
	resp = testutil.DoJSON(t, app, "POST", "/api/courses/1/reviews", token, map[string]interface{}{
		"rating": 1, "comment": "Changed my mind",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Out-of-range rating rejected
	resp = testutil.DoJSON(t, app, "POST", "/api/courses/2/reviews", token, map[string]interface{}{
		"rating": 6,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
