package utils

import (
	"log"
	"time"

	"lms/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeCheckoutScheduler starts a sweep that finalizes PROCESSING
// orders whose simulated payment delay has elapsed but whose in-process
// timer never fired (the timer is lost if it is cancelled or the order
// was left behind by an earlier run). The finalize callback must be
// idempotent.
func InitializeCheckoutScheduler(db *gorm.DB, delay time.Duration, finalize func(orderID uint)) *cron.Cron {
	log.Println("[CHECKOUT-SCHEDULER] Initializing checkout scheduler...")

	c := cron.New()

	c.AddFunc("* * * * *", func() {
		SweepStuckCheckouts(db, delay, finalize)
	})

	c.Start()
	log.Println("[CHECKOUT-SCHEDULER] Checkout scheduler started - runs every minute")

	return c
}

// SweepStuckCheckouts finalizes overdue PROCESSING orders
func SweepStuckCheckouts(db *gorm.DB, delay time.Duration, finalize func(orderID uint)) {
	// Give the in-process timer a full extra delay before stepping in.
	cutoff := time.Now().Add(-2 * delay)

	var orders []models.CheckoutOrder
	if err := db.
		Where("status = ? AND submitted_at < ?", models.OrderProcessing, cutoff).
		Find(&orders).Error; err != nil {
		log.Printf("[CHECKOUT-SCHEDULER] Error fetching stuck orders: %v", err)
		return
	}

	if len(orders) == 0 {
		return
	}

	log.Printf("[CHECKOUT-SCHEDULER] Finalizing %d stuck orders", len(orders))
	for _, order := range orders {
		finalize(order.ID)
	}
}
