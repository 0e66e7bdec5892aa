// Package adapters provides repository implementations for the user feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain/entity"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm on the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts a user.
// It returns domain.ErrUserDuplicate when the email or username is taken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserDuplicate
		}
		return err
	}
	return nil
}

// FindByLogin retrieves a user by email or username.
// An email match wins over a username match, so a username that equals
// another user's email never shadows that user.
func (r *userGorm) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	u, err := r.findOne(ctx, "email = ?", login)
	if errors.Is(err, domain.ErrUserNotFound) {
		return r.findOne(ctx, "username = ?", login)
	}
	return u, err
}

// FindByID retrieves a user by ID.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userGorm) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a unique constraint violation.
// gorm translates driver errors when TranslateError is enabled; the pgconn
// check covers connections opened without it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
