// Package usecase implements the business logic for the user feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain/entity"
)

// dummyHash is compared against when no user matches a login, so that
// lookups of unknown users cost the same as wrong passwords.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrUserDuplicate if the
	// email or username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByLogin retrieves the user whose email or username equals login.
	// It returns domain.ErrUserNotFound if there is none.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByID retrieves a user by its ID.
	// It returns domain.ErrUserNotFound if there is none.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	// GenerateToken returns a signed access token for the given user.
	GenerateToken(userID uint, username string) (string, error)
	// ParseToken verifies a token and returns the user ID it was issued for.
	ParseToken(token string) (uint, error)
}

// CreateUserInput holds the fields required to register a user.
type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Username string
}

// LoginInput holds user credentials. Login is either an email or a username.
type LoginInput struct {
	Login    string
	Password string
}

// LoginResult is returned to the client as-is on a successful login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

// UserData is the public view of a user.
type UserData struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

// userUsecase implements the user business logic.
type userUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewUserUsecase creates a new userUsecase.
func NewUserUsecase(users UserRepository, tokens TokenIssuer) *userUsecase {
	return &userUsecase{
		users:  users,
		tokens: tokens,
	}
}

// CreateUser registers a new user with a hashed password.
// Email, full name and username are trimmed and must not end up empty.
func (u *userUsecase) CreateUser(ctx context.Context, in CreateUserInput) error {
	user := &entity.User{
		Email:    strings.TrimSpace(in.Email),
		FullName: strings.TrimSpace(in.FullName),
		Username: strings.TrimSpace(in.Username),
	}
	if user.Email == "" || user.FullName == "" || user.Username == "" {
		return domain.ErrInvalidUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserDuplicate) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns an access token.
// A blank login never reaches the repository and reports ErrUserNotFound.
func (u *userUsecase) LoginUser(ctx context.Context, in LoginInput) (LoginResult, error) {
	var user *entity.User
	var err error = domain.ErrUserNotFound
	if login := strings.TrimSpace(in.Login); login != "" {
		user, err = u.users.FindByLogin(ctx, login)
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return LoginResult{}, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(in.Password))

	if err != nil {
		return LoginResult{}, domain.ErrUserNotFound
	}
	if compareErr != nil {
		return LoginResult{}, domain.ErrWrongPassword
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return LoginResult{AccessToken: token}, nil
}

// GetUser resolves the user an access token was issued for.
func (u *userUsecase) GetUser(ctx context.Context, token string) (UserData, error) {
	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return UserData{}, fmt.Errorf("%w: %v", domain.ErrUserToken, err)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserData{}, domain.ErrUserToken
		}
		return UserData{}, fmt.Errorf("failed to find user: %w", err)
	}

	return UserData{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Username: user.Username,
	}, nil
}
