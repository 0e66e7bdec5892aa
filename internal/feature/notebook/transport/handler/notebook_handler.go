// Package handler provides the HTTP handlers for the notebook feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresavalerio/software-engineering-backend/internal/api"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/transport/http/dto"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/usecase"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/validation"
)

// NotebookService defines the notebook operations the handler depends on.
type NotebookService interface {
	// CreateNotebook stores a notebook and returns its new ID.
	CreateNotebook(ctx context.Context, in usecase.CreateNotebookInput) (string, error)
}

// NotebookHandler handles HTTP requests for the notebook resource.
type NotebookHandler struct {
	notebooks NotebookService
}

// NewNotebookHandler creates a NotebookHandler backed by the given service.
func NewNotebookHandler(notebooks NotebookService) *NotebookHandler {
	return &NotebookHandler{notebooks: notebooks}
}

// Register mounts the notebook routes on rg.
func (h *NotebookHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateNotebook)
}

// CreateNotebook handles POST /notebooks.
//   - 400 when title, notes or username is missing or rejected
//   - 200 with the new ID on success
func (h *NotebookHandler) CreateNotebook(c *gin.Context) {
	var req dto.CreateNotebookReq
	if err := validation.BindJSON(c, &req); err != nil {
		log.Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("create notebook: invalid body")
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: "invalid request body"})
		return
	}
	if field, missing := validation.MissingField(req); missing {
		c.JSON(http.StatusBadRequest, api.MissingValue(field))
		return
	}

	id, err := h.notebooks.CreateNotebook(c.Request.Context(), usecase.CreateNotebookInput{
		Title:    req.Title,
		Notes:    req.Notes,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidNotebook) {
			c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: "invalid notebook"})
			return
		}
		log.Error().Err(err).Str("remote_addr", c.ClientIP()).Msg("create notebook failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	log.Info().Str("id", id).Str("username", req.Username).Msg("notebook created")
	c.JSON(http.StatusOK, api.CreatedResponse{ID: id})
}
