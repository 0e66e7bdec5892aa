// Package entity defines the domain entities for the notebook feature.
package entity

import "time"

// Notebook is a titled set of notes owned by a user.
type Notebook struct {
	// ID is a UUID assigned by the usecase before insertion.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title string `gorm:"size:255;not null" json:"title"`
	Notes string `gorm:"type:text;not null" json:"notes"`

	// Username identifies the owner.
	Username string `gorm:"index;size:64;not null" json:"username"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
