// Package adapters provides repository implementations for the notebook feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/domain/entity"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/usecase"
)

type notebookGorm struct {
	db *gorm.DB
}

var _ usecase.NotebookRepository = (*notebookGorm)(nil)

// NewNotebookGorm creates a GORM-backed notebook repository.
func NewNotebookGorm(db *gorm.DB) *notebookGorm {
	return &notebookGorm{db: db}
}

// Insert adds a notebook row.
func (r *notebookGorm) Insert(ctx context.Context, nb *entity.Notebook) error {
	return r.db.WithContext(ctx).Create(nb).Error
}
