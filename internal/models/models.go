package models

import (
	"time"
)

const (
	DefaultProfileImage = "default-profile.png"
	DefaultThumbImage   = "noimage.png"
	DefaultCover        = "nocover.png"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Age          *string   `json:"age,omitempty" db:"age"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	CategoryID string    `json:"id" db:"category_id"`
	Title      string    `json:"title" db:"title"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID     string    `json:"id" db:"post_id"`
	Title      string    `json:"title" db:"title"`
	Body       string    `json:"body" db:"body"`
	CategoryID string    `json:"categories" db:"category_id"`
	Date       time.Time `json:"date" db:"date"`
	ThumbImage string    `json:"thumbimage" db:"thumb_image"`
	Comments   []Comment `json:"comments" db:"-"`
}

// Comment has no identity of its own outside the post that owns it.
type Comment struct {
	PostID   string    `json:"-" db:"post_id"`
	Position int       `json:"-" db:"position"`
	Title    string    `json:"title" db:"title"`
	Name     string    `json:"name" db:"name"`
	Body     string    `json:"body" db:"body"`
	Date     time.Time `json:"date" db:"date"`
}

type Book struct {
	BookID      string    `json:"id" db:"book_id"`
	Title       string    `json:"title" db:"title"`
	CategoryID  string    `json:"categories" db:"category_id"`
	Description string    `json:"description" db:"description"`
	Author      string    `json:"author" db:"author"`
	Publisher   string    `json:"publisher" db:"publisher"`
	Price       float64   `json:"price" db:"price"`
	Cover       string    `json:"cover" db:"cover"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Stats struct {
	Users      int `json:"users" db:"users"`
	Categories int `json:"categories" db:"categories"`
	Posts      int `json:"posts" db:"posts"`
	Comments   int `json:"comments" db:"comments"`
	Books      int `json:"books" db:"books"`
}
