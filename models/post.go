package models

import "time"

// Post represents a blog post created by an author.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Subtitle  string    `gorm:"size:255;not null" json:"subtitle"`
	Date      string    `gorm:"size:32;not null" json:"date"` // human formatted, e.g. "August 30, 26"
	Body      string    `gorm:"type:text;not null" json:"body"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments  []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
}
