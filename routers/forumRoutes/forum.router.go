package forumRoutes

import (
	forumController "lms/controllers/forum"
	"lms/middleware"
	forumValidator "lms/validators/forum"

	"github.com/gofiber/fiber/v2"
)

func SetupForumRoutes(app *fiber.App, ctrl *forumController.ForumController) {
	forum := app.Group("/api/forum", middleware.JWTMiddleware)
	forum.Get("/posts", ctrl.ListPosts)
	forum.Post("/posts", forumValidator.CreatePost(), ctrl.CreatePost)
	forum.Post("/posts/:id/replies", forumValidator.AddReply(), ctrl.AddReply)
	forum.Post("/posts/:id/like", forumValidator.IDParam(), ctrl.LikePost)
	forum.Post("/replies/:id/like", forumValidator.IDParam(), ctrl.LikeReply)
}
