package main

import (
	"log"
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
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db := database.Connect(config.AppConfig.DBDsn)
	database.Seed(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	paymentDelay := time.Duration(config.AppConfig.PaymentDelayMs) * time.Millisecond

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

	utils.InitializeCheckoutScheduler(db, paymentDelay, checkoutCtrl.Finalize)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
