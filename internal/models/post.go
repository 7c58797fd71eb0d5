package models

import "time"

// Post represents a journal post owned by a user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:120"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageURL  string    `json:"image_url,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

// CreatePostRequest defines the request body for creating a new post.
// Title and content are accepted as-is, empty included.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,max=255"`
}

// PostSummary is the per-post entry returned by the post listing
type PostSummary struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Content          string `json:"content"`
	ImageURL         string `json:"image_url,omitempty"`
	Author           string `json:"author"`
	NumberOfComments int64  `json:"number_of_comments"`
}

// PostDetail is the full post representation returned by the single-post endpoint
type PostDetail struct {
	PostSummary
	CreatedAt time.Time `json:"created_at"`
}
