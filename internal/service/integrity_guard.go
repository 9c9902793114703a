package service

import (
	"context"
	"fmt"

	"contentHub/internal/repository"
)

// requireCategory confirms the category exists and holds a share lock on
// it until tx ends, so it cannot be deleted before the dependent write
// commits.
func requireCategory(ctx context.Context, tx *repository.Repository, categoryID string) error {
	ok, err := tx.Category.LockShared(ctx, categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category %s: %w", categoryID, ErrReferenceNotFound)
	}
	return nil
}

// requirePost confirms the post exists and serialises comment appends to it.
func requirePost(ctx context.Context, tx *repository.Repository, postID string) error {
	ok, err := tx.Post.LockForUpdate(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("post %s: %w", postID, ErrTargetNotFound)
	}
	return nil
}
