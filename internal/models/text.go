package models

import (
	"time"
	"unicode/utf8"
)

// TruncateText returns at most length runes of text.
func TruncateText(text string, length int) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= length {
		return text
	}

	runes := []rune(text)
	return string(runes[:length])
}

const summaryLength = 200

type PostSummary struct {
	PostID       string `json:"id"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	CategoryID   string `json:"categories"`
	ThumbImage   string `json:"thumbimage"`
	CommentCount int    `json:"commentCount"`
	Date         string `json:"date"`
}

func SummarizePost(p Post) PostSummary {
	return PostSummary{
		PostID:       p.PostID,
		Title:        p.Title,
		Excerpt:      TruncateText(p.Body, summaryLength),
		CategoryID:   p.CategoryID,
		ThumbImage:   p.ThumbImage,
		CommentCount: len(p.Comments),
		Date:         p.Date.UTC().Format(time.RFC3339),
	}
}

type BookSummary struct {
	BookID     string  `json:"id"`
	Title      string  `json:"title"`
	Excerpt    string  `json:"excerpt"`
	CategoryID string  `json:"categories"`
	Author     string  `json:"author"`
	Price      float64 `json:"price"`
	Cover      string  `json:"cover"`
}

func SummarizeBook(b Book) BookSummary {
	return BookSummary{
		BookID:     b.BookID,
		Title:      b.Title,
		Excerpt:    TruncateText(b.Description, summaryLength),
		CategoryID: b.CategoryID,
		Author:     b.Author,
		Price:      b.Price,
		Cover:      b.Cover,
	}
}
