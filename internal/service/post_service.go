package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contentHub/internal/models"
	"contentHub/internal/repository"
	"contentHub/internal/storage"
)

type PostInput struct {
	Title      string `json:"title" validate:"required,max=255"`
	Body       string `json:"body" validate:"required"`
	CategoryID string `json:"categories" validate:"required"`
	// PrevImage keeps an already stored thumbnail when no new file is sent.
	PrevImage string  `json:"prevImage" validate:"max=512"`
	Thumb     *Upload `json:"-"`
}

type CommentInput struct {
	PostID string `json:"postId" validate:"required"`
	Title  string `json:"title" validate:"required,max=255"`
	Name   string `json:"name" validate:"required,max=255"`
	Body   string `json:"body" validate:"required"`
}

type PostService interface {
	Create(ctx context.Context, in PostInput) (*models.Post, error)
	Update(ctx context.Context, postID string, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
	Get(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	AddComment(ctx context.Context, in CommentInput) (*models.Post, error)
}

type postService struct {
	repo  *repository.Repository
	store storage.Storage
	now   func() time.Time
}

func NewPostService(repo *repository.Repository, store storage.Storage) PostService {
	return &postService{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.PrevImage = strings.TrimSpace(in.PrevImage)
}

func (s *postService) Create(ctx context.Context, in PostInput) (*models.Post, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      in.Title,
		Body:       in.Body,
		CategoryID: in.CategoryID,
		Date:       s.now().UTC(),
	}

	var thumbRef string
	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := requireCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}

		var err error
		if thumbRef, err = saveUpload(ctx, s.store, "posts", in.Thumb); err != nil {
			return err
		}
		post.ThumbImage = thumbRef

		return tx.Post.Create(ctx, post)
	})
	if err != nil {
		discardUpload(ctx, s.store, thumbRef)
		return nil, err
	}

	return post, nil
}

func (s *postService) Update(ctx context.Context, postID string, in PostInput) (*models.Post, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var (
		post     *models.Post
		thumbRef string
	)
	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		var err error
		if post, err = tx.Post.GetByID(ctx, postID); err != nil {
			return err
		}
		if err := requireCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}

		if thumbRef, err = saveUpload(ctx, s.store, "posts", in.Thumb); err != nil {
			return err
		}

		post.Title = in.Title
		post.Body = in.Body
		post.CategoryID = in.CategoryID
		post.Date = s.now().UTC()
		switch {
		case thumbRef != "":
			post.ThumbImage = thumbRef
		case in.PrevImage != "":
			post.ThumbImage = in.PrevImage
		}

		if err := tx.Post.Update(ctx, post); err != nil {
			return err
		}

		post.Comments, err = tx.Comment.GetByPostID(ctx, post.PostID)
		return err
	})
	if err != nil {
		discardUpload(ctx, s.store, thumbRef)
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, postID string) error {
	return s.repo.Post.Delete(ctx, postID)
}

func (s *postService) Get(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Comments, err = s.repo.Comment.GetByPostID(ctx, postID); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.repo.Post.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].PostID
	}

	byPost, err := s.repo.Comment.GetByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Comments = byPost[posts[i].PostID]
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}

	return posts, nil
}

// AddComment appends to the post's comment sequence and returns the post
// with every comment, oldest first.
func (s *postService) AddComment(ctx context.Context, in CommentInput) (*models.Post, error) {
	in.PostID = strings.TrimSpace(in.PostID)
	in.Title = strings.TrimSpace(in.Title)
	in.Name = strings.TrimSpace(in.Name)
	in.Body = strings.TrimSpace(in.Body)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var post *models.Post
	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := requirePost(ctx, tx, in.PostID); err != nil {
			return err
		}

		comment := &models.Comment{
			PostID: in.PostID,
			Title:  in.Title,
			Name:   in.Name,
			Body:   in.Body,
			Date:   s.now().UTC(),
		}
		if err := tx.Comment.Append(ctx, comment); err != nil {
			return err
		}

		var err error
		if post, err = tx.Post.GetByID(ctx, in.PostID); err != nil {
			return err
		}
		post.Comments, err = tx.Comment.GetByPostID(ctx, in.PostID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return post, nil
}
