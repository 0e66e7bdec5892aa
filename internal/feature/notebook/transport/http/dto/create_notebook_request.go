// Package dto defines data transfer objects for the notebook feature's HTTP transport layer.
package dto

// CreateNotebookReq is the request body for POST /notebooks.
type CreateNotebookReq struct {
	Title    string `json:"title" validate:"required"`
	Notes    string `json:"notes" validate:"required"`
	Username string `json:"username" validate:"required"`
}
