package dto

// LoginReq is the request body for POST /users/login.
// Login accepts either an email or a username.
type LoginReq struct {
	Login    string `json:"login" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}
