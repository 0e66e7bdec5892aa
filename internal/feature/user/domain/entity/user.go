// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// FullName is the display name of the user.
	FullName string `gorm:"size:255;not null" json:"fullName"`

	// Username must be unique across all users.
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized, so cached copies carry no hash.
	Password string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
