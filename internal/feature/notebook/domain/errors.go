// Package domain defines domain-level errors for the notebook feature.
package domain

import "errors"

// ErrInvalidNotebook indicates that a notebook is missing a title, notes or owner.
var ErrInvalidNotebook = errors.New("invalid notebook")
