package database

import (
	"log"

	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
	forumModels "lms/models/forum"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the startup catalog, demo accounts and forum fixtures.
// Safe to call more than once; does nothing when courses already exist.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&courseModels.Course{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding startup data...")

	seedUsers(db)
	seedCourses(db)
	seedForum(db)
}

func seedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Seed: failed to hash demo password: %v", err)
		return
	}

	users := []models.User{
		{Name: "Demo Learner", Email: "learner@lms.dev", Password: string(hash), Role: "learner"},
		{Name: "Sarah Johnson", Email: "sarah@lms.dev", Password: string(hash), Role: "instructor"},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("Seed: failed to create user %s: %v", users[i].Email, err)
		}
	}
}

func seedCourses(db *gorm.DB) {
	courses := []courseModels.Course{
		{
			Title:         "Complete React Development Course",
			Description:   "Learn React from scratch with hands-on projects and real-world examples. Master components, hooks, state management, and modern React patterns.",
			Price:         99.99,
			Instructor:    "Sarah Johnson",
			Thumbnail:     "https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg?auto=compress&cs=tinysrgb&dpr=1&w=500&h=300",
			Rating:        4.8,
			StudentsCount: 1250,
			Duration:      "12 hours",
			Level:         "Beginner",
			Category:      "Programming",
			Modules: []courseModels.Module{
				{
					Title:      "Introduction to React",
					OrderIndex: 0,
					Lessons: []courseModels.Lesson{
						{Title: "What is React?", ContentType: "video", Content: "Introduction to React concepts", Duration: 15, OrderIndex: 0},
						{Title: "Setting up Development Environment", ContentType: "video", Content: "Setup guide", Duration: 20, OrderIndex: 1},
						{Title: "Your First Component", ContentType: "video", Content: "Creating components", Duration: 25, OrderIndex: 2},
					},
				},
				{
					Title:      "React Hooks",
					OrderIndex: 1,
					Lessons: []courseModels.Lesson{
						{Title: "useState Hook", ContentType: "video", Content: "State management", Duration: 30, OrderIndex: 0},
						{Title: "useEffect Hook", ContentType: "video", Content: "Side effects", Duration: 35, OrderIndex: 1},
					},
				},
			},
		},
		{
			Title:         "Advanced JavaScript Mastery",
			Description:   "Deep dive into advanced JavaScript concepts including async programming, design patterns, and modern ES6+ features.",
			Price:         79.99,
			Instructor:    "Michael Chen",
			Thumbnail:     "https://images.pexels.com/photos/270348/pexels-photo-270348.jpeg?auto=compress&cs=tinysrgb&dpr=1&w=500&h=300",
			Rating:        4.9,
			StudentsCount: 890,
			Duration:      "8 hours",
			Level:         "Advanced",
			Category:      "Programming",
			Modules: []courseModels.Module{
				{
					Title:      "Async JavaScript",
					OrderIndex: 0,
					Lessons: []courseModels.Lesson{
						{Title: "Promises and Async/Await", ContentType: "video", Content: "Async programming", Duration: 40, OrderIndex: 0},
						{Title: "Fetch API", ContentType: "video", Content: "API calls", Duration: 25, OrderIndex: 1},
					},
				},
			},
		},
		{
			Title:         "UI/UX Design Fundamentals",
			Description:   "Learn the principles of user interface and user experience design. Create beautiful, functional designs that users love.",
			Price:         89.99,
			Instructor:    "Emily Rodriguez",
			Thumbnail:     "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&dpr=1&w=500&h=300",
			Rating:        4.7,
			StudentsCount: 650,
			Duration:      "10 hours",
			Level:         "Beginner",
			Category:      "Design",
			Modules: []courseModels.Module{
				{
					Title:      "Design Principles",
					OrderIndex: 0,
					Lessons: []courseModels.Lesson{
						{Title: "Color Theory", ContentType: "video", Content: "Understanding colors", Duration: 30, OrderIndex: 0},
						{Title: "Typography", ContentType: "video", Content: "Font selection", Duration: 25, OrderIndex: 1},
					},
				},
			},
		},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Printf("Seed: failed to create course %q: %v", courses[i].Title, err)
		}
	}
}

func seedForum(db *gorm.DB) {
	posts := []forumModels.Post{
		{
			Title:    "Help with React Hooks useState",
			Content:  "I'm having trouble understanding how to properly use useState in React. Can someone explain the best practices?",
			Category: "Programming",
			AuthorID: 1,
			Author:   "John Student",
			Likes:    5,
			Replies: []forumModels.Reply{
				{
					Content:  "useState is a Hook that lets you add state to functional components. Here's a simple example...",
					AuthorID: 2,
					Author:   "Sarah Johnson",
					Likes:    3,
				},
			},
		},
		{
			Title:    "Design System Best Practices",
			Content:  "What are the key principles when building a design system for a large application?",
			Category: "Design",
			AuthorID: 1,
			Author:   "Mike Designer",
			Likes:    8,
		},
	}

	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Printf("Seed: failed to create forum post %q: %v", posts[i].Title, err)
		}
	}
}
