package middleware

import "github.com/gofiber/fiber/v2"

// InstructorOnly allows only instructor accounts past this point.
// Must run after JWTMiddleware.
func InstructorOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "instructor" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Instructor access required!", nil)
	}
	return c.Next()
}
