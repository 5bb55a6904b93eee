package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserService handles signup and login.
type UserService interface {
	// Signup creates a user after checking the email is unused. The check and
	// the insert are separate operations, so concurrent signups with the same
	// email can both succeed.
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type userService struct {
	repo       repository.UserRepository
	tokens     auth.TokenIssuer
	bcryptCost int
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, tokens auth.TokenIssuer, bcryptCost int) UserService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	if len(password) > MaxPasswordBytes {
		return nil, apperrors.NewValidationError("User", "password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
