package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contentHub/internal/auth"
	"contentHub/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Read queries never select password_hash; only VerifyCredentials loads it.
const userColumns = `user_id, username, email, name, age, profile_image, created_at`

type userRepository struct {
	db     sqlx.ExtContext
	hasher auth.PasswordHasher
}

func NewUserRepository(db sqlx.ExtContext, hasher auth.PasswordHasher) UserRepository {
	return &userRepository{db: db, hasher: hasher}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	hashedPassword, err := r.hasher.Hash(password)
	if err != nil {
		return err
	}

	user.UserID = uuid.New().String()
	user.PasswordHash = hashedPassword
	if user.ProfileImage == "" {
		user.ProfileImage = models.DefaultProfileImage
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO users (user_id, username, email, name, password_hash, age, profile_image, created_at)
		VALUES (:user_id, :username, :email, :name, :password_hash, :age, :profile_image, :created_at)
	`

	_, err = sqlx.NamedExecContext(ctx, r.db, query, user)
	// the hash stays inside the store
	user.PasswordHash = ""
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("user violates %s: %w", constraint, ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if !validID(userID) {
		return nil, notFound("user", userID)
	}

	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID,
		func() error { return notFound("user", userID) })
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username,
		func() error { return fmt.Errorf("user %s: %w", username, ErrNotFound) })
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email,
		func() error { return fmt.Errorf("user with email %s: %w", email, ErrNotFound) })
}

func (r *userRepository) getOne(ctx context.Context, query, arg string, missing func() error) (*models.User, error) {
	var user models.User

	err := sqlx.GetContext(ctx, r.db, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, missing()
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	err := sqlx.SelectContext(ctx, r.db, &users, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE username = $1`

	err := sqlx.GetContext(ctx, r.db, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	ok := r.hasher.Verify(password, user.PasswordHash)
	user.PasswordHash = ""
	if !ok {
		return nil, auth.ErrPasswordMismatch
	}

	return &user, nil
}
