// Package usecase implements the business logic for the notebook feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/domain/entity"
)

// NotebookRepository abstracts the persistence layer for notebooks.
type NotebookRepository interface {
	// Insert persists a notebook whose ID is already set.
	Insert(ctx context.Context, notebook *entity.Notebook) error
}

// CreateNotebookInput holds the fields required to create a notebook.
type CreateNotebookInput struct {
	Title    string
	Notes    string
	Username string
}

type notebookUsecase struct {
	notebooks NotebookRepository
	newID     func() string
}

// NewNotebookUsecase creates a notebook usecase that assigns random UUIDs.
func NewNotebookUsecase(notebooks NotebookRepository) *notebookUsecase {
	return &notebookUsecase{
		notebooks: notebooks,
		newID:     uuid.NewString,
	}
}

// CreateNotebook validates and stores a notebook, returning its new ID.
func (u *notebookUsecase) CreateNotebook(ctx context.Context, in CreateNotebookInput) (string, error) {
	nb := &entity.Notebook{
		ID:       u.newID(),
		Title:    strings.TrimSpace(in.Title),
		Notes:    in.Notes,
		Username: strings.TrimSpace(in.Username),
	}
	if nb.Title == "" || strings.TrimSpace(nb.Notes) == "" || nb.Username == "" {
		return "", domain.ErrInvalidNotebook
	}

	if err := u.notebooks.Insert(ctx, nb); err != nil {
		return "", fmt.Errorf("failed to insert notebook: %w", err)
	}
	return nb.ID, nil
}
