// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresavalerio/software-engineering-backend/internal/api"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/transport/http/dto"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/usecase"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/validation"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidUser      = "invalid user"
	msgDuplicatedUser   = "duplicated user"
	msgUserNotFound     = "user not found"
	msgUnauthorizedUser = "unauthorized user"
	msgMissingToken     = "Header without authorization token."
	msgMalformedToken   = "Authorization not in required format."
	msgInvalidToken     = "Invalid token."
	msgInternalError    = "Internal Server Error."
)

var bearerPattern = regexp.MustCompile(`^Bearer ([^ ]+)$`)

// UserService defines the user operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserService interface {
	// CreateUser registers a new user.
	CreateUser(ctx context.Context, in usecase.CreateUserInput) error
	// LoginUser authenticates a user and returns an access token.
	LoginUser(ctx context.Context, in usecase.LoginInput) (usecase.LoginResult, error)
	// GetUser resolves the user an access token was issued for.
	GetUser(ctx context.Context, token string) (usecase.UserData, error)
}

// UserHandler handles HTTP requests for the user resource.
type UserHandler struct {
	users UserService
}

// NewUserHandler creates a UserHandler backed by the given service.
func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register mounts the user routes on rg.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.GetUser)
	rg.POST("", h.CreateUser)
	rg.POST("/login", h.LoginUser)
}

// CreateUser handles POST /users.
//   - 400 when a required field is missing or blank
//   - 409 when the user already exists
//   - 201 with an empty body on success
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if err := validation.BindJSON(c, &req); err != nil {
		log.Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("create user: invalid body")
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msgInvalidBody})
		return
	}
	if field, missing := validation.MissingField(req); missing {
		c.JSON(http.StatusBadRequest, api.MissingValue(field))
		return
	}

	err := h.users.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindDuplicateUser:
			log.Warn().Str("username", req.Username).Str("remote_addr", c.ClientIP()).Msg("create user: duplicate")
			c.JSON(http.StatusConflict, api.MessageResponse{Msg: msgDuplicatedUser})
		case domain.KindInvalidUser:
			c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msgInvalidUser})
		default:
			log.Error().Err(err).Str("remote_addr", c.ClientIP()).Msg("create user failed")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("username", req.Username).Str("remote_addr", c.ClientIP()).Msg("user created")
	c.Status(http.StatusCreated)
}

// LoginUser handles POST /users/login.
//   - 400 when login or password is missing
//   - 409 when no user matches the login
//   - 401 when the password is wrong
//   - 200 with the login result on success
func (h *UserHandler) LoginUser(c *gin.Context) {
	var req dto.LoginReq
	if err := validation.BindJSON(c, &req); err != nil {
		log.Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("login: invalid body")
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msgInvalidBody})
		return
	}
	if field, missing := validation.MissingField(req); missing {
		c.JSON(http.StatusBadRequest, api.MissingValue(field))
		return
	}

	result, err := h.users.LoginUser(c.Request.Context(), usecase.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindUserNotFound:
			log.Warn().Str("login", req.Login).Str("remote_addr", c.ClientIP()).Msg("login: user not found")
			c.JSON(http.StatusConflict, api.MessageResponse{Msg: msgUserNotFound})
		case domain.KindWrongPassword:
			log.Warn().Str("login", req.Login).Str("remote_addr", c.ClientIP()).Msg("login: wrong password")
			c.JSON(http.StatusUnauthorized, api.MessageResponse{Msg: msgUnauthorizedUser})
		default:
			log.Error().Err(err).Str("remote_addr", c.ClientIP()).Msg("login failed")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	log.Info().Str("login", req.Login).Str("remote_addr", c.ClientIP()).Msg("user login successful")
	c.JSON(http.StatusOK, result)
}

// GetUser handles GET /users, resolving the caller from a bearer token.
//   - 400 when the Authorization header is absent or malformed
//   - 401 when the token is rejected
//   - 200 with the user data on success
func (h *UserHandler) GetUser(c *gin.Context) {
	if len(c.Request.Header.Values("Authorization")) == 0 {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msgMissingToken})
		return
	}

	match := bearerPattern.FindStringSubmatch(c.GetHeader("Authorization"))
	if match == nil {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Msg: msgMalformedToken})
		return
	}

	data, err := h.users.GetUser(c.Request.Context(), match[1])
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindInvalidToken:
			log.Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("get user: invalid token")
			c.JSON(http.StatusUnauthorized, api.MessageResponse{Msg: msgInvalidToken})
		default:
			log.Error().Err(err).Str("remote_addr", c.ClientIP()).Msg("get user failed")
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Msg: msgInternalError})
		}
		return
	}

	c.JSON(http.StatusOK, data)
}
