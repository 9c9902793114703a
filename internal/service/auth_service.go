package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"contentHub/internal/auth"
	"contentHub/internal/models"
	"contentHub/internal/repository"
	"contentHub/internal/storage"
)

// Age is stored as text but clients send it either quoted or as a number.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Age(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("age must be a string or a number")
	}
	*a = Age(n.String())
	return nil
}

func (a *Age) UnmarshalText(text []byte) error {
	*a = Age(text)
	return nil
}

// Field limits follow the column widths of the users table. bcrypt rejects
// passwords longer than 72 bytes.
type RegisterInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Username  string  `json:"username" validate:"required,max=64"`
	Password  string  `json:"password" validate:"required,maxbytes=72"`
	Password2 string  `json:"password2" validate:"omitempty,eqfield=Password"`
	Age       *Age    `json:"age" validate:"omitempty,max=16"`
	Image     *Upload `json:"-"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, in LoginInput) (string, error)
}

type authService struct {
	users  repository.UserRepository
	issuer auth.TokenIssuer
	store  storage.Storage
}

func NewAuthService(users repository.UserRepository, issuer auth.TokenIssuer, store storage.Storage) AuthService {
	return &authService{
		users:  users,
		issuer: issuer,
		store:  store,
	}
}

// Register creates the identity and returns it with a fresh token. The
// lookups only produce an early conflict; the unique constraints decide.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	var age *string
	if in.Age != nil {
		trimmed := strings.TrimSpace(string(*in.Age))
		in.Age = (*Age)(&trimmed)
		age = &trimmed
	}
	if err := validateStruct(in); err != nil {
		return nil, "", err
	}

	if err := s.ensureAvailable(ctx, in.Username, in.Email); err != nil {
		return nil, "", err
	}

	imageRef, err := saveUpload(ctx, s.store, "users", in.Image)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		Name:         in.Name,
		Age:          age,
		ProfileImage: imageRef,
	}

	if err := s.users.CreateUser(ctx, user, in.Password); err != nil {
		discardUpload(ctx, s.store, imageRef)
		if errors.Is(err, repository.ErrConflict) {
			return nil, "", fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, "", fmt.Errorf("register user: %w", err)
	}

	token, err := s.issuer.Issue(user.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *authService) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username %s is taken", ErrConflict, username)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email %s is taken", ErrConflict, email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return nil
}

// Login does not tell an unknown username apart from a wrong password.
func (s *authService) Login(ctx context.Context, in LoginInput) (string, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validateStruct(in); err != nil {
		return "", err
	}

	user, err := s.users.VerifyCredentials(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, auth.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify credentials: %w", err)
	}

	token, err := s.issuer.Issue(user.UserID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
