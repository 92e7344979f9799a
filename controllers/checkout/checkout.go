package checkoutController

import (
	"log"
	"sync"
	"time"

	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CheckoutController runs the mock payment flow. An order moves
// PROCESSING -> SUCCEEDED after the configured delay; the simulated
// gateway cannot fail, so there is no failure path. A still-processing
// order can be cancelled, which stops its timer.
type CheckoutController struct {
	Db    *gorm.DB
	Delay time.Duration

	mu     sync.Mutex
	timers map[uint]*time.Timer
}

func NewCheckoutController(db *gorm.DB, delay time.Duration) *CheckoutController {
	return &CheckoutController{
		Db:     db,
		Delay:  delay,
		timers: make(map[uint]*time.Timer),
	}
}

// StartCheckout snapshots the cart into a PROCESSING order and arms
// the payment timer. Re-submitting while an order is still processing
// returns the open order instead of creating a second one.
func (cc *CheckoutController) StartCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var openOrder models.CheckoutOrder
	if err := cc.Db.Preload("Items").
		Where("user_id = ? AND status = ?", userID, models.OrderProcessing).
		First(&openOrder).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout already in progress!", openOrder)
	}

	var cartItems []models.CartItem
	if err := cc.Db.Preload("Course").Where("user_id = ?", userID).Order("id asc").Find(&cartItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}
	if len(cartItems) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	order := models.CheckoutOrder{
		UserID:      userID,
		Status:      models.OrderProcessing,
		SubmittedAt: time.Now(),
	}
	for _, item := range cartItems {
		order.Items = append(order.Items, models.CheckoutItem{
			CourseID:    item.CourseID,
			CourseTitle: item.Course.Title,
			Price:       item.Course.Price,
			Quantity:    item.Quantity,
		})
		order.TotalAmount += item.Course.Price * float64(item.Quantity)
	}

	if err := cc.Db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	cc.armTimer(order.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment processing started!", order)
}

// GetCheckout polls an order's status
func (cc *CheckoutController) GetCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID := c.Locals("orderID").(int)

	var order models.CheckoutOrder
	if err := cc.Db.Preload("Items").Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}

// CancelCheckout aborts a still-processing order and stops its timer,
// so navigating away does not leave a pending payment behind
func (cc *CheckoutController) CancelCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID := c.Locals("orderID").(int)

	var order models.CheckoutOrder
	if err := cc.Db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status != models.OrderProcessing {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order is no longer processing!", order)
	}

	cc.stopTimer(order.ID)

	if err := cc.Db.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout cancelled!", order)
}

// Finalize completes a PROCESSING order: enrolls the user in every
// snapshotted course, clears the cart and marks the order SUCCEEDED.
// Idempotent; safe to call from the timer and the sweep.
func (cc *CheckoutController) Finalize(orderID uint) {
	cc.stopTimer(orderID)

	var order models.CheckoutOrder
	if err := cc.Db.Preload("Items").Where("id = ?", orderID).First(&order).Error; err != nil {
		log.Printf("Checkout: order %d not found: %v", orderID, err)
		return
	}
	if order.Status != models.OrderProcessing {
		return
	}

	for _, item := range order.Items {
		// Enroll is idempotent, double submission cannot enroll twice.
		if _, _, err := courseController.EnrollUserInCourse(cc.Db, order.UserID, item.CourseID); err != nil {
			log.Printf("Checkout: failed to enroll user %d in course %d: %v", order.UserID, item.CourseID, err)
		}
	}

	if err := cc.Db.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("Checkout: failed to clear cart for user %d: %v", order.UserID, err)
	}

	now := time.Now()
	if err := cc.Db.Model(&order).Updates(map[string]interface{}{
		"status":       models.OrderSucceeded,
		"completed_at": &now,
	}).Error; err != nil {
		log.Printf("Checkout: failed to complete order %d: %v", orderID, err)
	}
}

func (cc *CheckoutController) armTimer(orderID uint) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.timers[orderID] = time.AfterFunc(cc.Delay, func() {
		cc.Finalize(orderID)
	})
}

func (cc *CheckoutController) stopTimer(orderID uint) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if timer, ok := cc.timers[orderID]; ok {
		timer.Stop()
		delete(cc.timers, orderID)
	}
}
