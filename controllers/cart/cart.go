package cartController

import (
	"math"

	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CartController owns the pre-checkout basket
type CartController struct {
	Db *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{Db: db}
}

// GetCart returns the user's cart with totals
func (cc *CartController) GetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := cc.cartItems(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"items":       items,
		"total_price": TotalPrice(items),
		"items_count": ItemCount(items),
	})
}

// AddToCart appends a course with quantity 1. Re-adding an existing
// course is a no-op returning the existing item.
func (cc *CartController) AddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := cc.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existingItem models.CartItem
	if err := cc.Db.Preload("Course").Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingItem).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course already in cart!", existingItem)
	}

	item := models.CartItem{
		UserID:   userID,
		CourseID: uint(courseID),
		Quantity: 1,
		Course:   course,
	}

	if err := cc.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added to cart!", item)
}

// RemoveFromCart removes the matching item
func (cc *CartController) RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var item models.CartItem
	if err := cc.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not in cart!", nil)
	}

	if err := cc.Db.Delete(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course from cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from cart!", nil)
}

// ClearCart empties the user's cart
func (cc *CartController) ClearCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := cc.Db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart cleared!", nil)
}

func (cc *CartController) cartItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := cc.Db.Preload("Course").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// TotalPrice sums price * quantity over the cart, rounded to cents
func TotalPrice(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Course.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// ItemCount sums quantities over the cart
func ItemCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
