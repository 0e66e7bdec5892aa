// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// CreateUserReq is the request body for POST /users.
// Field order is the order in which missing values are reported.
// Identifiers are trimmed before they are stored, so whitespace-only
// values count as missing. The password is kept verbatim.
type CreateUserReq struct {
	Email    string `json:"email" validate:"notblank"`
	FullName string `json:"fullName" validate:"notblank"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"notblank"`
}
