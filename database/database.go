package database

import (
	"log"

	"lms/models"
	courseModels "lms/models/course"
	forumModels "lms/models/forum"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the in-memory SQLite store and runs migrations. The
// returned handle is the single source of truth for all state; it is
// passed explicitly to whichever component needs it. Nothing is
// persisted - the store lives and dies with the process.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open in-memory store: %v", err)
	}

	// A shared-cache memory database needs a single connection so every
	// session sees the same data.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	return db
}

// runMigrations performs schema migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.EnrollmentModule{},
		&courseModels.EnrollmentLesson{},
		&courseModels.Certificate{},
		&courseModels.CourseReview{},
		&models.CartItem{},
		&models.CheckoutOrder{},
		&models.CheckoutItem{},
		&forumModels.Post{},
		&forumModels.Reply{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
