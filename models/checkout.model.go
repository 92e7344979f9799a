package models

import (
	"time"

	"gorm.io/gorm"
)

// Checkout order statuses. The simulated gateway cannot fail, so there
// is no FAILED status; an order either succeeds after the configured
// delay or is cancelled while still processing.
const (
	OrderProcessing = "PROCESSING"
	OrderSucceeded  = "SUCCEEDED"
	OrderCancelled  = "CANCELLED"
)

// CheckoutOrder is one checkout submission. Items are snapshotted from
// the cart at submission time so later cart edits cannot change what
// gets enrolled.
type CheckoutOrder struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Status      string         `json:"status" gorm:"default:'PROCESSING'"`
	TotalAmount float64        `json:"total_amount" gorm:"default:0"`
	SubmittedAt time.Time      `json:"submitted_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	Items       []CheckoutItem `json:"items"`
}

// CheckoutItem is a cart line frozen at checkout submission
type CheckoutItem struct {
	gorm.Model
	CheckoutOrderID uint    `json:"checkout_order_id" gorm:"index;not null"`
	CourseID        uint    `json:"course_id" gorm:"not null"`
	CourseTitle     string  `json:"course_title"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity" gorm:"default:1"`
}
