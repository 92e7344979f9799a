package cartRoutes

import (
	cartController "lms/controllers/cart"
	"lms/middleware"
	cartValidator "lms/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App, ctrl *cartController.CartController) {
	cart := app.Group("/api/cart", middleware.JWTMiddleware)
	cart.Get("/", ctrl.GetCart)
	cart.Post("/", cartValidator.AddToCart(), ctrl.AddToCart)
	cart.Delete("/", ctrl.ClearCart)
	cart.Delete("/:courseId", cartValidator.CourseIDParam(), ctrl.RemoveFromCart)
}
