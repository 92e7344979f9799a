package forumController

import (
	"lms/middleware"
	forumModels "lms/models/forum"
	forumValidator "lms/validators/forum"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ForumController owns the discussion board
type ForumController struct {
	Db *gorm.DB
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{Db: db}
}

// ListPosts returns all posts, most recent first, with their replies
// in append order
func (fc *ForumController) ListPosts(c *fiber.Ctx) error {
	var posts []forumModels.Post
	if err := fc.Db.
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("created_at desc, id desc").
		Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

// CreatePost publishes a new post authored by the current user
func (fc *ForumController) CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	authorName, _ := c.Locals("name").(string)

	reqData, ok := c.Locals("validatedPost").(*forumValidator.CreatePostPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post := forumModels.Post{
		Title:    reqData.Title,
		Content:  reqData.Content,
		Category: reqData.Category,
		AuthorID: userID,
		Author:   authorName,
		Likes:    0,
	}

	if err := fc.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// AddReply appends a reply to an existing post. Unknown post ids fail
// with 404 and leave every post untouched.
func (fc *ForumController) AddReply(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	authorName, _ := c.Locals("name").(string)

	postID := c.Locals("postID").(int)

	reqData, ok := c.Locals("validatedReply").(*forumValidator.ReplyPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var post forumModels.Post
	if err := fc.Db.Where("id = ?", postID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reply := forumModels.Reply{
		PostID:   post.ID,
		Content:  reqData.Content,
		AuthorID: userID,
		Author:   authorName,
		Likes:    0,
	}

	if err := fc.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply added successfully!", reply)
}

// LikePost increments a post's like count
func (fc *ForumController) LikePost(c *fiber.Ctx) error {
	postID := c.Locals("id").(int)

	var post forumModels.Post
	if err := fc.Db.Where("id = ?", postID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	if err := fc.Db.Model(&post).UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post liked!", fiber.Map{
		"id":    post.ID,
		"likes": post.Likes + 1,
	})
}

// LikeReply increments a reply's like count
func (fc *ForumController) LikeReply(c *fiber.Ctx) error {
	replyID := c.Locals("id").(int)

	var reply forumModels.Reply
	if err := fc.Db.Where("id = ?", replyID).First(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reply not found!", nil)
	}

	if err := fc.Db.Model(&reply).UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply liked!", fiber.Map{
		"id":    reply.ID,
		"likes": reply.Likes + 1,
	})
}
