package checkoutRoutes

import (
	checkoutController "lms/controllers/checkout"
	"lms/middleware"
	checkoutValidator "lms/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckoutRoutes(app *fiber.App, ctrl *checkoutController.CheckoutController) {
	checkout := app.Group("/api/checkout", middleware.JWTMiddleware)
	checkout.Post("/", ctrl.StartCheckout)
	checkout.Get("/:id", checkoutValidator.OrderID(), ctrl.GetCheckout)
	checkout.Delete("/:id", checkoutValidator.OrderID(), ctrl.CancelCheckout)
}
