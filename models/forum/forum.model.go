package forum

import "gorm.io/gorm"

// Post is a discussion forum post. Immutable once created except for
// appended replies and like increments.
type Post struct {
	gorm.Model
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Category     string  `json:"category"`
	AuthorID     uint    `json:"author_id" gorm:"index;not null"`
	Author       string  `json:"author"`
	AuthorAvatar string  `json:"author_avatar"`
	Likes        int     `json:"likes" gorm:"default:0"`
	Replies      []Reply `json:"replies"`
}

// Reply belongs to exactly one post; appended, never reordered or deleted
type Reply struct {
	gorm.Model
	PostID       uint   `json:"post_id" gorm:"index;not null"`
	Content      string `json:"content"`
	AuthorID     uint   `json:"author_id" gorm:"index;not null"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"author_avatar"`
	Likes        int    `json:"likes" gorm:"default:0"`
}
