package cartController_test

import (
	"testing"
	"time"

	"lms/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartIsIdempotent(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := testutil.Data(t, resp)
	assert.Equal(t, float64(1), item["quantity"])

	// Re-adding the same course is a no-op
	resp = testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": 1})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	again := testutil.Data(t, resp)
	assert.Equal(t, item["ID"], again["ID"])

	resp = testutil.DoJSON(t, app, "GET", "/api/cart", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cart := testutil.Data(t, resp)
	assert.Equal(t, float64(1), cart["items_count"])
	assert.Len(t, cart["items"].([]interface{}), 1)
}

func TestAddUnknownCourse(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": 999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCartTotals(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	// Courses priced 99.99 and 79.99
	for _, id := range []int{1, 2} {
		resp := testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": id})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := testutil.DoJSON(t, app, "GET", "/api/cart", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cart := testutil.Data(t, resp)
	assert.InDelta(t, 179.98, cart["total_price"].(float64), 0.001)
	assert.Equal(t, float64(2), cart["items_count"])
}

func TestRemoveAndReAdd(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "DELETE", "/api/cart/1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Removing again is a loud failure, not a silent no-op
	resp = testutil.DoJSON(t, app, "DELETE", "/api/cart/1", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Re-add restores a fresh item with default quantity
	resp = testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := testutil.Data(t, resp)
	assert.Equal(t, float64(1), item["quantity"])

	resp = testutil.DoJSON(t, app, "GET", "/api/cart", token, nil)
	cart := testutil.Data(t, resp)
	assert.Equal(t, float64(1), cart["items_count"])
}

func TestClearCart(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	token := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")

	for _, id := range []int{1, 2, 3} {
		resp := testutil.DoJSON(t, app, "POST", "/api/cart", token, map[string]interface{}{"course_id": id})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := testutil.DoJSON(t, app, "DELETE", "/api/cart", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "GET", "/api/cart", token, nil)
	cart := testutil.Data(t, resp)
	assert.Equal(t, float64(0), cart["items_count"])
	assert.Equal(t, float64(0), cart["total_price"])
	assert.Empty(t, cart["items"])
}

func TestCartsAreScopedPerUser(t *testing.T) {
	app, _, _ := testutil.NewTestApp(t, time.Second)
	alice := testutil.Register(t, app, "Alice Learner", "alice@example.com", "learner")
	bob := testutil.Register(t, app, "Bob Learner", "bob@example.com", "learner")

	resp := testutil.DoJSON(t, app, "POST", "/api/cart", alice, map[string]interface{}{"course_id": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = testutil.DoJSON(t, app, "GET", "/api/cart", bob, nil)
	cart := testutil.Data(t, resp)
	assert.Equal(t, float64(0), cart["items_count"])
}
