package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lms/config"
	authController "lms/controllers/auth"
	cartController "lms/controllers/cart"
	checkoutController "lms/controllers/checkout"
	courseController "lms/controllers/course"
	forumController "lms/controllers/forum"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	cartRoutes "lms/routers/cartRoutes"
	checkoutRoutes "lms/routers/checkoutRoutes"
	courseRoutes "lms/routers/courseRoutes"
	forumRoutes "lms/routers/forumRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbCounter int64

// NewTestApp wires a full application against a fresh uniquely-named
// in-memory store, mirroring main. The checkout controller is returned
// so tests can drive finalization directly.
func NewTestApp(t *testing.T, paymentDelay time.Duration) (*fiber.App, *gorm.DB, *checkoutController.CheckoutController) {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.SaltRound = 4 // keep bcrypt cheap in tests
	config.AppConfig.EmailSender = ""

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db := database.Connect(dsn)
	database.Seed(db)

	app := fiber.New()

	authCtrl := authController.NewAuthController(db)
	courseCtrl := courseController.NewCourseController(db)
	cartCtrl := cartController.NewCartController(db)
	checkoutCtrl := checkoutController.NewCheckoutController(db, paymentDelay)
	forumCtrl := forumController.NewForumController(db)

	authRoutes.SetupAuthRoutes(app, authCtrl)
	courseRoutes.SetupCourseRoutes(app, courseCtrl)
	cartRoutes.SetupCartRoutes(app, cartCtrl)
	checkoutRoutes.SetupCheckoutRoutes(app, checkoutCtrl)
	forumRoutes.SetupForumRoutes(app, forumCtrl)

	return app, db, checkoutCtrl
}

// Register creates an account through the API and returns its bearer token
func Register(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	resp := DoJSON(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "register %s", email)

	body := DecodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

// DoJSON performs a JSON request against the test app
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeBody decodes the standard response envelope
func DecodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// Data unwraps the data field of a response envelope as a map
func Data(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body := DecodeBody(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return data
}
