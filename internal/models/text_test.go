package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "", TruncateText("abc", 0))
	assert.Equal(t, "abc", TruncateText("abc", 10))
	assert.Equal(t, "ab", TruncateText("abc", 2))
	assert.Equal(t, "Кни", TruncateText("Книга", 3))
}

func TestSummarizePost(t *testing.T) {
	post := Post{
		PostID:     "p1",
		Title:      "T",
		Body:       strings.Repeat("x", 500),
		CategoryID: "c1",
		ThumbImage: DefaultThumbImage,
		Date:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Comments:   []Comment{{Title: "a"}, {Title: "b"}},
	}

	s := SummarizePost(post)

	assert.Len(t, s.Excerpt, summaryLength)
	assert.Equal(t, 2, s.CommentCount)
	assert.Equal(t, "2024-01-02T03:04:05Z", s.Date)
	assert.Equal(t, "c1", s.CategoryID)
}

func TestSummarizeBook(t *testing.T) {
	s := SummarizeBook(Book{BookID: "b1", Description: "short", Price: 9.5})

	assert.Equal(t, "short", s.Excerpt)
	assert.Equal(t, 9.5, s.Price)
}
