package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	auth := app.Group("/api/auth")
	auth.Post("/register", authValidator.Register(), ctrl.Register)
	auth.Post("/login", authValidator.Login(), ctrl.Login)

	app.Get("/api/user/profile", middleware.JWTMiddleware, ctrl.GetProfile)
}
