package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles carried by accounts. The first account ever registered is seeded with
// RoleAuthor; everyone after that registers as a plain member.
const (
	RoleAuthor = "author"
	RoleMember = "member"
)

// User represents a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Role         string    `gorm:"size:32;not null;default:'member'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Posts        []Post    `json:"-"`
	Comments     []Comment `json:"-"`
}

// CanAuthorPosts reports whether the account may create, edit, and delete posts.
// Nil-safe so templates can call it on an anonymous (nil) current user.
func (u *User) CanAuthorPosts() bool {
	return u != nil && u.Role == RoleAuthor
}

// CanModerate reports whether the account may act on other users' content.
func (u *User) CanModerate() bool {
	return u != nil && u.Role == RoleAuthor
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}
